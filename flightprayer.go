// Package flightprayer computes an in-flight prayer schedule from a
// recorded flight track: for each of the six daily prayer boundaries, it
// finds the track position at which the aircraft's local clock crosses
// the boundary, and the qibla bearing at that position.
//
// The package is a pure pipeline: raw tracklog rows in, a Schedule out.
// Everything that talks to the outside world (tracklog acquisition,
// the astronomical prayer-time routine, timezone lookup) is injected
// via the small interfaces on Pipeline.
package flightprayer

import (
	"errors"
	"math"
)

// Prayer names one of the six daily boundaries. The declaration order
// matters: it is the tiebreak order for boundaries not observed in-flight.
type Prayer int

const (
	Fajr Prayer = iota
	Sunrise
	Dhuhr
	Asr
	Maghrib
	Isha
)

var AllPrayers = []Prayer{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

func (p Prayer)String() string {
	switch p {
	case Fajr:    return "Fajr"
	case Sunrise: return "Sunrise"
	case Dhuhr:   return "Dhuhr"
	case Asr:     return "Asr"
	case Maghrib: return "Maghrib"
	case Isha:    return "Isha"
	}
	return "(unknown prayer)"
}

// PrayerTimes holds the six boundary times for one location and date, as
// decimal local hours. NaN means the routine could not compute a value
// for that boundary at that location.
type PrayerTimes struct {
	Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha float64
}

func (pt PrayerTimes)Hour(p Prayer) float64 {
	switch p {
	case Fajr:    return pt.Fajr
	case Sunrise: return pt.Sunrise
	case Dhuhr:   return pt.Dhuhr
	case Asr:     return pt.Asr
	case Maghrib: return pt.Maghrib
	case Isha:    return pt.Isha
	}
	return math.NaN()
}

// ErrInsufficientTrackData means the tracklog had no usable points left
// after sanitization; no schedule can be produced from it.
var ErrInsufficientTrackData = errors.New("insufficient track data after sanitization")
