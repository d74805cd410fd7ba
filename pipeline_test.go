package flightprayer_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/skypies/geo"

	fp "github.com/salahsky/flightprayer"
	"github.com/salahsky/flightprayer/salat"
)

type fixedZones string

func (z fixedZones)ZoneName(lat, lng float64) (string, error) { return string(z), nil }

// syntheticRows builds a tracklog whose surviving points (after the
// default 5/15 trim) tick 10.0 -> 12.9 in 6-minute steps, plus a couple
// of facility-artifact rows the sanitizer must drop first.
func syntheticRows() []fp.RawTrackRow {
	rows := []fp.RawTrackRow{}
	for i := 0; i < 50; i++ {
		if i == 2 || i == 40 {
			rows = append(rows, fp.RawTrackRow{
				Clock: "-----", Lat: "Toronto Center", Facility: "Toronto Center"})
		}
		hour := 9.5 + 0.1*float64(i)
		rows = append(rows, fp.RawTrackRow{
			Clock:    fp.FormatClock12(hour),
			Lat:      "43.650043.6500",
			Long:     "-79.3400-79.3400",
			Altitude: "350350",
			Course:   "134°",
			Facility: "Toronto Center",
		})
	}
	return rows
}

func TestPipelinePlan(t *testing.T) {
	nan := math.NaN()
	gotOffsets := []float64{}
	gotAltitudes := []float64{}

	pipeline := fp.Pipeline{
		Salat: salat.Func(func(ctx context.Context, date time.Time, pos geo.Latlong, altitudeMeters float64, utcOffset float64) (fp.PrayerTimes, error) {
			gotOffsets = append(gotOffsets, utcOffset)
			gotAltitudes = append(gotAltitudes, altitudeMeters)
			return fp.PrayerTimes{
				Fajr:    5.0,
				Sunrise: nan,
				Dhuhr:   12.05,
				Asr:     10.3,
				Maghrib: nan,
				Isha:    12.9,
			}, nil
		}),
		Zones:         fixedZones("America/Toronto"),
		ReferenceZone: "US/Eastern",
	}

	date := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	plan,err := pipeline.Plan(context.Background(), syntheticRows(), fp.PlanInput{
		Date:           date,
		DepartureClock: "10:00 AM",
	})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if len(plan.Track) != 30 {
		t.Fatalf("expected 30 points after sanitization, got %d", len(plan.Track))
	}
	if plan.OriginZone != "America/Toronto" {
		t.Errorf("origin zone: got %q", plan.OriginZone)
	}
	// Both zones sit at UTC-4 in August, so no cross-frame shift and no
	// schedule slip: the declared departure equals the first sample.
	if math.Abs(plan.TimezoneOffset) > 1e-9 {
		t.Errorf("timezone offset: expected 0, got %f", plan.TimezoneOffset)
	}
	if math.Abs(plan.TimeCorrection) > 1e-9 {
		t.Errorf("time correction: expected 0, got %f", plan.TimeCorrection)
	}

	// The calculator is consulted once per point, with the point's
	// altitude in meters and the origin's UTC offset.
	if len(gotOffsets) != 30 {
		t.Fatalf("calculator called %d times, expected 30", len(gotOffsets))
	}
	for _,off := range gotOffsets {
		if math.Abs(off-(-4.0)) > 1e-9 {
			t.Fatalf("calculator got utc offset %f, expected -4", off)
		}
	}
	if math.Abs(gotAltitudes[0]-350*0.3048) > 1e-9 {
		t.Errorf("calculator got altitude %f m", gotAltitudes[0])
	}

	expected := []struct {
		prayer fp.Prayer
		index  int
	}{
		{fp.Asr, 2},      // 10.2 is the first sample within 0.2 of 10.3
		{fp.Dhuhr, 19},   // 11.9 for a 12.05 boundary
		{fp.Isha, 28},    // 12.8 for a 12.9 boundary
		{fp.Fajr, -1},    // 5.0 is hours outside the flight window
		{fp.Sunrise, -1}, // unavailable at every point
		{fp.Maghrib, -1},
	}
	if len(plan.Schedule) != len(expected) {
		t.Fatalf("schedule has %d entries", len(plan.Schedule))
	}
	for i,e := range expected {
		actual := plan.Schedule[i]
		if actual.Prayer != e.prayer || actual.Index != e.index {
			t.Errorf("schedule[%d]: expected %s@%d, got %s@%d",
				i, e.prayer, e.index, actual.Prayer, actual.Index)
		}
	}

	// Bearings only where a crossing was observed.
	asr := plan.Schedule[0]
	if math.Abs(asr.Qibla.Absolute-54.612030) > 1e-4 {
		t.Errorf("asr absolute bearing: got %f", asr.Qibla.Absolute)
	}
	if math.Abs(asr.Qibla.Relative-(54.612030-134.0)) > 1e-4 {
		t.Errorf("asr relative bearing: got %f", asr.Qibla.Relative)
	}
	if !math.IsNaN(plan.Schedule[3].Qibla.Absolute) {
		t.Errorf("fajr must carry no bearing")
	}
}

func TestPipelineInsufficientData(t *testing.T) {
	pipeline := fp.Pipeline{
		Salat:         salat.Func(func(context.Context, time.Time, geo.Latlong, float64, float64) (fp.PrayerTimes, error) { return fp.PrayerTimes{}, nil }),
		Zones:         fixedZones("America/Toronto"),
		ReferenceZone: "US/Eastern",
	}
	_,err := pipeline.Plan(context.Background(), syntheticRows()[:10], fp.PlanInput{
		Date:           time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		DepartureClock: "10:00 AM",
	})
	if !errors.Is(err, fp.ErrInsufficientTrackData) {
		t.Errorf("expected ErrInsufficientTrackData, got %v", err)
	}
}

func TestPipelineCalculatorFailure(t *testing.T) {
	boom := fmt.Errorf("astronomy service is down")
	pipeline := fp.Pipeline{
		Salat: salat.Func(func(context.Context, time.Time, geo.Latlong, float64, float64) (fp.PrayerTimes, error) {
			return fp.PrayerTimes{}, boom
		}),
		Zones:         fixedZones("America/Toronto"),
		ReferenceZone: "US/Eastern",
	}
	_,err := pipeline.Plan(context.Background(), syntheticRows(), fp.PlanInput{
		Date:           time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		DepartureClock: "10:00 AM",
	})
	if !errors.Is(err, boom) {
		t.Errorf("calculator failure must propagate; got %v", err)
	}
}
