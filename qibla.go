package flightprayer

import (
	"math"

	"github.com/skypies/geo"
)

// KaabaLatlong is the fixed qibla target.
var KaabaLatlong = geo.Latlong{Lat: 21.4225, Long: 39.8262}

// QiblaBearing is the direction to the Kaaba from one trackpoint.
// Absolute is the initial great-circle bearing in [0,360). Relative is
// Absolute minus the aircraft's heading, deliberately left
// unnormalized: positive means the Kaaba is clockwise of the nose.
// Both are NaN for a boundary with no observed crossing.
type QiblaBearing struct {
	Absolute float64
	Relative float64
}

// QiblaDirection computes the initial great-circle bearing from pos to
// the Kaaba, as degrees in [0,360). At the Kaaba itself the bearing is
// degenerate and comes back as 0.
func QiblaDirection(pos geo.Latlong) float64 {
	lat1 := pos.Lat * math.Pi / 180.0
	lon1 := pos.Long * math.Pi / 180.0
	lat2 := KaabaLatlong.Lat * math.Pi / 180.0
	lon2 := KaabaLatlong.Long * math.Pi / 180.0

	deltaLon := lon2 - lon1
	x := math.Sin(deltaLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	theta := math.Atan2(x, y)
	return math.Mod(theta*180.0/math.Pi+360.0, 360.0)
}

// ComputeBearings produces one QiblaBearing per crossing, NaN-valued
// for crossings that were not observed.
func ComputeBearings(t Track, crossings []Crossing) []QiblaBearing {
	out := make([]QiblaBearing, len(crossings))
	for i,c := range crossings {
		if !c.Observed() {
			out[i] = QiblaBearing{math.NaN(), math.NaN()}
			continue
		}
		tp := t[c.Index]
		abs := QiblaDirection(tp.Latlong)
		out[i] = QiblaBearing{Absolute: abs, Relative: abs - tp.Heading}
	}
	return out
}
