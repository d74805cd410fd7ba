// Package tz resolves geographic points to IANA timezone names and
// timezone names to UTC offsets on a given date.
package tz

import (
	"fmt"
	"time"

	"github.com/bradfitz/latlong"
)

// LatlongResolver looks up zone names from the compiled-in timezone
// shapefile data. It is a pure function of the coordinates.
type LatlongResolver struct{}

func (LatlongResolver)ZoneName(lat, lng float64) (string, error) {
	name := latlong.LookupZoneName(lat, lng)
	if name == "" {
		return "", fmt.Errorf("tz: no zone found at (%.4f,%.4f)", lat, lng)
	}
	return name, nil
}

// ZoneOffset returns the zone's UTC offset in decimal hours at midnight
// local time on the given date. DST is whatever the zone says it is on
// that date.
func ZoneOffset(name string, date time.Time) (float64, error) {
	loc,err := time.LoadLocation(name)
	if err != nil {
		return 0, fmt.Errorf("tz: %q: %w", name, err)
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	_, secs := t.Zone()
	return float64(secs) / 3600.0, nil
}
