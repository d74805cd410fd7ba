package salat

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/skypies/geo"

	fp "github.com/salahsky/flightprayer"
	"github.com/salahsky/flightprayer/tz"
)

// AladhanClient computes prayer times via the AlAdhan web API. The API
// answers in the wall clock of the queried location; the client shifts
// the result into the UTC offset the pipeline asked for, which is plain
// timezone arithmetic, not astronomy. The API also assumes an observer
// at ground level, so the client applies the horizon-depression
// adjustment for the requested altitude to the sunrise and maghrib
// timings itself.
type AladhanClient struct {
	Client  *http.Client
	BaseURL string // default https://api.aladhan.com
	Method  string // one of Methods; default MWL
	Log     zerolog.Logger
}

func (ac *AladhanClient)Init() {
	if ac.Client == nil {
		ac.Client = &http.Client{Timeout: 20 * time.Second}
	}
	if ac.BaseURL == "" {
		ac.BaseURL = "https://api.aladhan.com"
	}
	if ac.Method == "" {
		ac.Method = "MWL"
	}
}

type aladhanResponse struct {
	Code int    `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
		Meta    struct {
			Timezone string `json:"timezone"`
		} `json:"meta"`
	} `json:"data"`
}

func (ac *AladhanClient)Times(ctx context.Context, date time.Time, pos geo.Latlong, altitudeMeters float64, utcOffset float64) (fp.PrayerTimes, error) {
	ac.Init()

	method, ok := Methods[ac.Method]
	if !ok {
		return fp.PrayerTimes{}, fmt.Errorf("salat: unknown method %q", ac.Method)
	}

	args := url.Values{}
	args.Set("latitude", fmt.Sprintf("%.6f", pos.Lat))
	args.Set("longitude", fmt.Sprintf("%.6f", pos.Long))
	args.Set("method", fmt.Sprintf("%d", method))

	urlToCall := fmt.Sprintf("%s/v1/timings/%s?%s",
		ac.BaseURL, date.Format("02-01-2006"), args.Encode())

	req,err := http.NewRequestWithContext(ctx, "GET", urlToCall, nil)
	if err != nil {
		return fp.PrayerTimes{}, err
	}
	resp,err := ac.Client.Do(req)
	if err != nil {
		return fp.PrayerTimes{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fp.PrayerTimes{}, fmt.Errorf("salat: aladhan returned %s", resp.Status)
	}

	out := aladhanResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fp.PrayerTimes{}, fmt.Errorf("salat: bad aladhan response: %w", err)
	}

	// The API reports in the location's own zone; shift to the frame
	// the caller wants the answers in.
	shift := 0.0
	if out.Data.Meta.Timezone != "" {
		localOffset,err := tz.ZoneOffset(out.Data.Meta.Timezone, date)
		if err != nil {
			return fp.PrayerTimes{}, err
		}
		shift = utcOffset - localOffset
	}

	ac.Log.Debug().
		Str("url", urlToCall).
		Str("zone", out.Data.Meta.Timezone).
		Float64("shift", shift).
		Msg("aladhan timings fetched")

	pt := fp.PrayerTimes{
		Fajr:    shiftedHour(out.Data.Timings["Fajr"], shift),
		Sunrise: shiftedHour(out.Data.Timings["Sunrise"], shift),
		Dhuhr:   shiftedHour(out.Data.Timings["Dhuhr"], shift),
		Asr:     shiftedHour(out.Data.Timings["Asr"], shift),
		Maghrib: shiftedHour(out.Data.Timings["Maghrib"], shift),
		Isha:    shiftedHour(out.Data.Timings["Isha"], shift),
	}

	// The horizon dips for an observer above the terrain, so at altitude
	// the sun rises earlier and sets later than on the ground.
	if dip := elevationShift(altitudeMeters); dip > 0 {
		pt.Sunrise = wrap24(pt.Sunrise - dip)
		pt.Maghrib = wrap24(pt.Maghrib + dip)
	}
	return pt, nil
}

// elevationShift is the sunrise/sunset adjustment for an observer at
// altitude, in hours: the extra solar depression angle 0.0347*sqrt(h)
// degrees, at four minutes of sun travel per degree. Zero at or below
// ground level.
func elevationShift(altitudeMeters float64) float64 {
	if altitudeMeters <= 0 {
		return 0
	}
	return 4.0 * 0.0347 * math.Sqrt(altitudeMeters) / 60.0
}

// wrap24 reduces an hour value into [0,24); NaN passes through.
func wrap24(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// shiftedHour parses an API timing ("04:56", sometimes suffixed with a
// zone like "04:56 (EDT)") and applies the frame shift, wrapped into
// [0,24). Missing or unparsable timings come back NaN.
func shiftedHour(s string, shift float64) float64 {
	if len(s) > 5 {
		s = s[:5]
	}
	h := fp.ParseClock24(s)
	if math.IsNaN(h) {
		return h
	}
	return wrap24(h + shift)
}
