package fa // scrapes flightaware.com's public history + tracklog pages

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

const kDefaultBaseURL = "https://www.flightaware.com"

// Pages without a UA get bot-walled.
const kUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type Flightaware struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
	Log       zerolog.Logger
}

func (fa *Flightaware)Init() {
	if fa.Client == nil {
		fa.Client = &http.Client{Timeout: 20 * time.Second}
	}
	if fa.BaseURL == "" {
		fa.BaseURL = kDefaultBaseURL
	}
	if fa.UserAgent == "" {
		fa.UserAgent = kUserAgent
	}
}

// HistoryEntry is one past flight on an ident's activity log.
type HistoryEntry struct {
	URL       string // absolute tracklog-capable history URL
	Date      string
	Aircraft  string
	Origin    string
	Destination string
	Departure string
	Arrival   string
}

// {{{ UrlToDoc

func (fa *Flightaware)UrlToDoc(ctx context.Context, url string) (*html.Node, error) {
	fa.Init()

	req,err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", fa.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp,err := fa.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fa: GET %s: %s", url, resp.Status)
	}

	fa.Log.Debug().Str("url", url).Msg("fa page fetched")
	return html.Parse(resp.Body)
}

// }}}
// {{{ NormalizeIdent

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// NormalizeIdent squashes user input into the ident form the site uses:
// "ua 123" -> "UA123".
func NormalizeIdent(s string) string {
	return strings.ToUpper(nonAlnum.ReplaceAllString(s, ""))
}

// }}}
// {{{ History

// History lists the past flights recorded for an ident, most recent
// first, as the site orders them.
func (fa *Flightaware)History(ctx context.Context, ident string) ([]HistoryEntry, error) {
	fa.Init()
	ident = NormalizeIdent(ident)

	doc,err := fa.UrlToDoc(ctx, fa.BaseURL+"/live/flight/"+ident+"/history")
	if err != nil {
		return nil, err
	}

	entries := ParseHistoryPage(doc, fa.BaseURL)
	if len(entries) == 0 {
		return nil, fmt.Errorf("fa: no flight history found for %q", ident)
	}
	return entries, nil
}

// }}}
// {{{ ParseHistoryPage

// ParseHistoryPage pulls history entries out of an activity-log page.
// Each row that links to a dated history URL becomes one entry; rows
// without such a link (ads, headers) are skipped.
func ParseHistoryPage(doc *html.Node, baseURL string) []HistoryEntry {
	entries := []HistoryEntry{}

	for _,tr := range findAll(doc, "tr") {
		href := ""
		for _,a := range findAll(tr, "a") {
			h := attr(a, "href")
			if strings.Contains(h, "/history/2") {
				href = h
				break
			}
		}
		if href == "" {
			continue
		}
		if !strings.HasPrefix(href, "http") {
			href = baseURL + href
		}

		cells := []string{}
		for _,td := range findAll(tr, "td") {
			cells = append(cells, strings.TrimSpace(nodeText(td)))
		}

		e := HistoryEntry{URL: href}
		if len(cells) > 0 { e.Date = cells[0] }
		if len(cells) > 1 { e.Aircraft = cells[1] }
		if len(cells) > 2 { e.Origin = cells[2] }
		if len(cells) > 3 { e.Destination = cells[3] }
		if len(cells) > 4 { e.Departure = cells[4] }
		if len(cells) > 5 { e.Arrival = cells[5] }
		entries = append(entries, e)
	}

	return entries
}

// }}}

// {{{ html helpers

func findAll(n *html.Node, tag string) []*html.Node {
	out := []*html.Node{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
			// no recursion into a match; tables don't nest on these pages
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _,a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nodeText concatenates every text node under n, with no separator;
// this deliberately reproduces the doubled tokens the site's nested
// spans produce, which the sanitizer knows how to undo.
func nodeText(n *html.Node) string {
	str := ""
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			str += n.Data
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return str
}

// }}}
