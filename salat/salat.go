// Package salat provides implementations of the astronomical
// prayer-time collaborator. The formulas themselves live elsewhere
// (an HTTP service, or whatever the caller injects); this package only
// adapts them to the pipeline's interface.
package salat

import (
	"context"
	"time"

	"github.com/skypies/geo"

	fp "github.com/salahsky/flightprayer"
)

// Func adapts a plain function to flightprayer.SalatCalculator.
type Func func(ctx context.Context, date time.Time, pos geo.Latlong, altitudeMeters float64, utcOffset float64) (fp.PrayerTimes, error)

func (f Func)Times(ctx context.Context, date time.Time, pos geo.Latlong, altitudeMeters float64, utcOffset float64) (fp.PrayerTimes, error) {
	return f(ctx, date, pos, altitudeMeters, utcOffset)
}

// Methods are the supported calculation conventions, keyed by the names
// users know them by.
var Methods = map[string]int{
	"Jafari":  0,
	"Karachi": 1,
	"ISNA":    2,
	"MWL":     3,
	"Makkah":  4,
	"Egypt":   5,
	"Tehran":  7,
}
