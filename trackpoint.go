package flightprayer

import (
	"fmt"
	"math"

	"github.com/skypies/geo"
)

// RawTrackRow is one unvalidated row from an acquired tracklog table,
// all fields still in the source's text form. The sanitizer consumes
// these; nothing else should.
type RawTrackRow struct {
	Clock    string // e.g. "Sun 09:41:25 PM", or "-----" when unreported
	Lat      string
	Long     string
	Altitude string // in feet; source sometimes doubles the token, e.g. "350350"
	Course   string // e.g. "134°"
	Facility string // reporting facility label, e.g. "Toronto Center"
}

// Trackpoint is a validated sample of the aircraft's position in space
// and time.
type Trackpoint struct {
	Index int // 0-based position within the sanitized track

	geo.Latlong // embedded, so all the geo math works directly on trackpoints

	Altitude float64 // in feet; never NaN (forward-filled by the sanitizer)
	Heading  float64 // [0.0, 360.0) degrees, direction the plane is pointing in

	// RawClock is the source's clock text, carried through sanitization
	// so the alignment engine can parse it in one place.
	RawClock string

	// FlightClock is the reconstructed local time of day in decimal
	// hours [0,24), filled in by AlignClocks. NaN when RawClock was
	// unparsable; such a point is never selected as a crossing.
	FlightClock float64
}

func (tp Trackpoint)String() string {
	clock := "--.---"
	if !math.IsNaN(tp.FlightClock) {
		clock = fmt.Sprintf("%06.3f", tp.FlightClock)
	}
	return fmt.Sprintf("[%03d] %s %.0fft, %.0fdeg, clock=%s",
		tp.Index, tp.Latlong, tp.Altitude, tp.Heading, clock)
}

// A Track is a slice of Trackpoints, strictly ordered by Index.
type Track []Trackpoint

func (t Track)String() string {
	if len(t) == 0 { return "Track: empty" }
	str := fmt.Sprintf("Track: %d points", len(t))
	s,e := t[0], t[len(t)-1]
	str += fmt.Sprintf(", %.1fKM (%.0f deg)", s.Dist(e.Latlong), s.BearingTowards(e.Latlong))
	return str
}

// Clocks returns the per-point flight clocks as one slice, NaNs included.
func (t Track)Clocks() []float64 {
	out := make([]float64, len(t))
	for i,tp := range t {
		out[i] = tp.FlightClock
	}
	return out
}
