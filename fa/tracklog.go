package fa

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	fp "github.com/salahsky/flightprayer"
)

// Tracklog fetches the per-sample position log for one history entry
// and returns its rows in source-text form, ready for the sanitizer.
func (fa *Flightaware)Tracklog(ctx context.Context, historyURL string) ([]fp.RawTrackRow, error) {
	fa.Init()

	url := strings.TrimSuffix(historyURL, "/") + "/tracklog"
	doc,err := fa.UrlToDoc(ctx, url)
	if err != nil {
		return nil, err
	}

	rows := ParseTracklogPage(doc)
	if len(rows) == 0 {
		return nil, fmt.Errorf("fa: no tracklog table at %s", url)
	}
	return rows, nil
}

// {{{ ParseTracklogPage

// Column headers we map into RawTrackRow fields; matched by substring,
// since the site's headers carry timezone suffixes ("Time (EDT)") and
// unit rows.
var kTracklogColumns = []struct {
	header string
	assign func(*fp.RawTrackRow, string)
}{
	{"Time", func(r *fp.RawTrackRow, s string) { r.Clock = s }},
	{"Latitude", func(r *fp.RawTrackRow, s string) { r.Lat = s }},
	{"Longitude", func(r *fp.RawTrackRow, s string) { r.Long = s }},
	{"Course", func(r *fp.RawTrackRow, s string) { r.Course = s }},
	{"feet", func(r *fp.RawTrackRow, s string) { r.Altitude = s }},
	{"Reporting Facility", func(r *fp.RawTrackRow, s string) { r.Facility = s }},
}

// ParseTracklogPage finds the position table on a tracklog page and
// converts its body rows to RawTrackRows. Returns nil when no table
// with the expected columns is present.
func ParseTracklogPage(doc *html.Node) []fp.RawTrackRow {
	for _,table := range findAll(doc, "table") {
		trs := findAll(table, "tr")
		if len(trs) < 2 {
			continue
		}

		// Header cells may be th or td; take the first row that
		// mentions Latitude.
		var colFor []func(*fp.RawTrackRow, string)
		body := trs
		for hi,tr := range trs {
			cells := rowCells(tr)
			if !rowMentions(cells, "Latitude") {
				continue
			}
			colFor = make([]func(*fp.RawTrackRow, string), len(cells))
			for ci,cell := range cells {
				for _,col := range kTracklogColumns {
					if strings.Contains(cell, col.header) {
						colFor[ci] = col.assign
						break
					}
				}
			}
			body = trs[hi+1:]
			break
		}
		if colFor == nil {
			continue
		}

		rows := []fp.RawTrackRow{}
		for _,tr := range body {
			cells := rowCells(tr)
			if len(cells) < 2 {
				continue
			}
			row := fp.RawTrackRow{}
			for ci,cell := range cells {
				if ci < len(colFor) && colFor[ci] != nil {
					colFor[ci](&row, cell)
				}
			}
			rows = append(rows, row)
		}
		if len(rows) > 0 {
			return rows
		}
	}
	return nil
}

func rowCells(tr *html.Node) []string {
	cells := []string{}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, strings.TrimSpace(nodeText(c)))
		}
	}
	return cells
}

func rowMentions(cells []string, s string) bool {
	for _,c := range cells {
		if strings.Contains(c, s) {
			return true
		}
	}
	return false
}

// }}}
