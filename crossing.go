package flightprayer

import (
	"math"
)

// CrossingTolerance is how close (in hours) a trackpoint's flight clock
// must be to a boundary's computed time to count as the crossing:
// twelve minutes, roughly the tracklog's sampling coarseness.
const CrossingTolerance = 0.2

// Crossing records where in the track the aircraft's clock met one
// prayer boundary. Index is -1 and Hour NaN when the boundary fell
// outside the flight's time window; that is a valid result, not an
// error.
type Crossing struct {
	Prayer Prayer
	Index  int     // trackpoint index, or -1
	Hour   float64 // the boundary's local hour at that point, or NaN
}

func (c Crossing)Observed() bool { return c.Index >= 0 }

// DetectCrossings finds, for each of the six boundaries, the first
// trackpoint whose flight clock lies within CrossingTolerance of that
// boundary's per-point time. samples[i] holds the prayer times computed
// at t[i]'s position; len(samples) must equal len(t).
//
// The earliest in-tolerance point wins, even when a later point is
// closer: the tracklog is chronological and its cadence is coarse, so
// the first sample inside the twelve-minute window is the best
// approximation of the true crossing. Do not replace this with a
// global-minimum scan; it changes which moment gets reported when
// several samples sit near the tolerance.
func DetectCrossings(t Track, samples []PrayerTimes) []Crossing {
	out := make([]Crossing, 0, len(AllPrayers))
	for _,p := range AllPrayers {
		c := Crossing{Prayer: p, Index: -1, Hour: math.NaN()}
		for i,tp := range t {
			boundary := samples[i].Hour(p)
			// NaN on either side fails the comparison, so unavailable
			// samples and unparsable clocks are never selected.
			if math.Abs(boundary-tp.FlightClock) <= CrossingTolerance {
				c.Index = i
				c.Hour = boundary
				break
			}
		}
		out = append(out, c)
	}
	return out
}
