package flightprayer

import (
	"math"
)

// AlignClocks reconstructs each trackpoint's local time of day as a
// continuous decimal-hour flight clock.
//
// The tracklog reports clocks in the calculation reference timezone;
// offset (origin minus reference, in hours) shifts them into the
// flight-origin frame. The declared departure clock (12-hour text, also
// shifted) then anchors the whole track: the difference between it and
// the first trackpoint's shifted reading is applied uniformly to every
// point, correcting for early or late departure. early says the flight
// left ahead of schedule, which flips which side of a midnight
// wraparound gets the +24.
//
// Returns the uniform correction in hours. Points whose clock text is
// unparsable get a NaN flight clock and are otherwise left alone.
func AlignClocks(t Track, departureClock string, offset float64, early bool) float64 {
	if len(t) == 0 {
		return math.NaN()
	}

	routeStart := shiftedClock(t[0].RawClock, offset)
	departure := shiftedClock(departureClock, offset)

	// Midnight-wrap resolution. When the flight crosses midnight one of
	// the two anchors lands on the wrong day; bump it by 24 before
	// differencing. The early branch only bumps its anchor; the single
	// difference below covers both cases, so an early departure can
	// yield a negative correction (see the pinned wrap tests).
	if early {
		if routeStart < departure {
			routeStart += 24
		}
	} else {
		if departure < routeStart {
			departure += 24
		}
	}
	correction := departure - routeStart

	for i := range t {
		t[i].FlightClock = mod24(shiftedClock(t[i].RawClock, offset) + correction)
	}
	return correction
}

// shiftedClock parses 12-hour clock text and applies the timezone
// offset; NaN when unparsable.
func shiftedClock(s string, offset float64) float64 {
	hr, min, ok := splitClock12(s)
	if !ok {
		return math.NaN()
	}
	return correctClock(hr, min, offset)
}
