package flightprayer

import (
	"context"
	"fmt"
	"time"

	"github.com/skypies/geo"

	"github.com/salahsky/flightprayer/tz"
)

const feetToMeters = 0.3048

// SalatCalculator is the astronomical collaborator: given a date, a 3-D
// position, and the UTC offset the answers should be expressed in, it
// returns the six boundary times as local decimal hours (NaN for a
// boundary it cannot compute at that position). It is treated as a pure
// function; this package never retries it.
type SalatCalculator interface {
	Times(ctx context.Context, date time.Time, pos geo.Latlong, altitudeMeters float64, utcOffset float64) (PrayerTimes, error)
}

// ZoneResolver maps a point to an IANA timezone name.
type ZoneResolver interface {
	ZoneName(lat, lng float64) (string, error)
}

// Pipeline wires the collaborators to the computation. Zero-value
// fields are not usable; construct one with all fields set (the app
// packages do).
type Pipeline struct {
	Salat SalatCalculator
	Zones ZoneResolver

	// ReferenceZone is the timezone the tracklog's clock column is
	// reported in.
	ReferenceZone string
}

// PlanInput is the per-flight request.
type PlanInput struct {
	Date           time.Time // the flight date, in the origin's calendar
	DepartureClock string    // declared departure, "HH:MM AM/PM", origin-frame
	Early          bool      // flight left ahead of the declared time
}

// Plan is the full result for one flight.
type Plan struct {
	Schedule       Schedule
	Crossings      []Crossing
	Bearings       []QiblaBearing // parallel to Crossings, prayer declaration order
	Track          Track
	TimeCorrection float64 // uniform clock correction applied, hours
	TimezoneOffset float64 // origin minus reference, hours
	OriginZone     string  // resolved IANA name at the first trackpoint
}

// Plan runs the whole pipeline over one flight's raw tracklog rows:
// sanitize, resolve timezones, align clocks, sample prayer times at
// every point, detect crossings, compute bearings, assemble the
// schedule. Collaborator failures and ErrInsufficientTrackData abort
// the computation; everything else degrades to absent entries.
func (p Pipeline)Plan(ctx context.Context, rows []RawTrackRow, in PlanInput) (*Plan, error) {
	track,err := Sanitize(rows)
	if err != nil {
		return nil, err
	}

	origin := track[0].Latlong
	zone,err := p.Zones.ZoneName(origin.Lat, origin.Long)
	if err != nil {
		return nil, err
	}
	originOffset,err := tz.ZoneOffset(zone, in.Date)
	if err != nil {
		return nil, err
	}
	refOffset,err := tz.ZoneOffset(p.ReferenceZone, in.Date)
	if err != nil {
		return nil, err
	}
	offset := originOffset - refOffset

	correction := AlignClocks(track, in.DepartureClock, offset, in.Early)

	samples := make([]PrayerTimes, len(track))
	for i,tp := range track {
		samples[i],err = p.Salat.Times(ctx, in.Date, tp.Latlong, tp.Altitude*feetToMeters, originOffset)
		if err != nil {
			return nil, fmt.Errorf("prayer times at point %d: %w", i, err)
		}
	}

	crossings := DetectCrossings(track, samples)
	bearings := ComputeBearings(track, crossings)

	return &Plan{
		Schedule:       AssembleSchedule(crossings, bearings),
		Crossings:      crossings,
		Bearings:       bearings,
		Track:          track,
		TimeCorrection: correction,
		TimezoneOffset: offset,
		OriginZone:     zone,
	}, nil
}
