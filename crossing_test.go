package flightprayer

import (
	"math"
	"testing"
)

func trackWithFlightClocks(clocks []float64) Track {
	t := Track{}
	for i,c := range clocks {
		t = append(t, Trackpoint{Index: i, FlightClock: c})
	}
	return t
}

func constSamples(n int, set func(*PrayerTimes)) []PrayerTimes {
	nan := math.NaN()
	samples := make([]PrayerTimes, n)
	for i := range samples {
		samples[i] = PrayerTimes{nan, nan, nan, nan, nan, nan}
		set(&samples[i])
	}
	return samples
}

// First in-tolerance point wins, even when a later point is closer.
func TestDetectCrossingsFirstMatchWins(t *testing.T) {
	clocks := []float64{11.0, 11.9, 11.95, 12.0, 12.05}
	tr := trackWithFlightClocks(clocks)
	samples := constSamples(len(clocks), func(pt *PrayerTimes) { pt.Dhuhr = 12.05 })

	crossings := DetectCrossings(tr, samples)
	dhuhr := crossings[Dhuhr]

	// Index 1 (|12.05-11.9| = 0.15) is within tolerance; indexes 2-4
	// are closer but must not be chosen.
	if dhuhr.Index != 1 {
		t.Errorf("expected index 1, got %d", dhuhr.Index)
	}
	if math.Abs(dhuhr.Hour-12.05) > 1e-9 {
		t.Errorf("expected boundary hour 12.05, got %f", dhuhr.Hour)
	}
}

func TestDetectCrossingsOutOfWindow(t *testing.T) {
	tr := trackWithFlightClocks([]float64{10.0, 10.5, 11.0})
	samples := constSamples(3, func(pt *PrayerTimes) { pt.Fajr = 5.0; pt.Isha = 22.0 })

	for _,c := range DetectCrossings(tr, samples) {
		if c.Observed() {
			t.Errorf("%s: expected no crossing, got index %d", c.Prayer, c.Index)
		}
		if !math.IsNaN(c.Hour) {
			t.Errorf("%s: expected NaN hour, got %f", c.Prayer, c.Hour)
		}
	}
}

func TestDetectCrossingsSkipsNaNClocks(t *testing.T) {
	nan := math.NaN()
	tr := trackWithFlightClocks([]float64{nan, 12.0, 12.1})
	samples := constSamples(3, func(pt *PrayerTimes) { pt.Dhuhr = 12.0 })

	crossings := DetectCrossings(tr, samples)
	if crossings[Dhuhr].Index != 1 {
		t.Errorf("NaN clock must never match; expected index 1, got %d", crossings[Dhuhr].Index)
	}
}

func TestDetectCrossingsToleranceBoundary(t *testing.T) {
	tr := trackWithFlightClocks([]float64{11.75, 12.0})
	samples := constSamples(2, func(pt *PrayerTimes) { pt.Asr = 12.2 })

	crossings := DetectCrossings(tr, samples)
	// |12.2 - 12.0| sits right at the tolerance; the comparison is
	// inclusive, so index 1 matches. Index 0 is well outside.
	if crossings[Asr].Index != 1 {
		t.Errorf("expected index 1 at the tolerance edge, got %d", crossings[Asr].Index)
	}
}

// The end-to-end scenario from the design discussion: 30 samples
// climbing linearly 10.0 -> 14.0, Dhuhr constant at 12.05. The first
// sample at or above 11.85 is index 14 (11.931), and it wins despite
// index 15 (12.069) being closer.
func TestDetectCrossingsLinearTrack(t *testing.T) {
	clocks := make([]float64, 30)
	for i := range clocks {
		clocks[i] = 10.0 + 4.0*float64(i)/29.0
	}
	tr := trackWithFlightClocks(clocks)
	samples := constSamples(30, func(pt *PrayerTimes) { pt.Dhuhr = 12.05 })

	crossings := DetectCrossings(tr, samples)
	dhuhr := crossings[Dhuhr]
	if dhuhr.Index != 14 {
		t.Errorf("expected index 14, got %d", dhuhr.Index)
	}
	if math.Abs(clocks[14]-11.9310344828) > 1e-6 {
		t.Errorf("fixture drifted: clocks[14] = %f", clocks[14])
	}
}
