package flightprayer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoClock is the sentinel the tracklog source uses for a missing clock
// reading, and the sentinel the astronomical routine uses for a
// boundary it could not compute.
const NoClock = "-----"

// AbsentClock is the placeholder rendered for a boundary not observed
// in-flight.
const AbsentClock = "—"

// ParseClock12 converts 12-hour clock text ("09:41 PM", with an
// optional weekday prefix and optional seconds, as the tracklog source
// writes it) to decimal hours in [0,24). The no-data sentinel and any
// malformed text map to NaN.
func ParseClock12(s string) float64 {
	hr, min, ok := splitClock12(s)
	if !ok {
		return math.NaN()
	}
	return float64(hr) + float64(min)/60.0
}

func splitClock12(s string) (hr, min int, ok bool) {
	s = strings.TrimSpace(s)
	if s == NoClock || len(s) < 4 {
		return 0, 0, false
	}

	// "Sun 09:41:25 PM" -> "09:41:25 PM"
	if len(s) > 4 && s[3] == ' ' && !strings.ContainsAny(s[:3], "0123456789") {
		s = s[4:]
	}

	meridiem := strings.ToUpper(s[len(s)-2:])
	if meridiem != "AM" && meridiem != "PM" {
		return 0, 0, false
	}
	s = strings.TrimSpace(s[:len(s)-2])

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	hr, err1 := strconv.Atoi(parts[0])
	min, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}

	if meridiem == "PM" {
		if hr != 12 {
			hr += 12
		}
	} else if hr == 12 {
		hr = 0
	}
	return hr, min, true
}

// ParseClock24 converts 24-hour "HH:MM" text (as the astronomical
// routine emits) to decimal hours. The sentinel maps to NaN; a leading
// "-" (the routine's own out-of-range marker) maps to 0.
func ParseClock24(s string) float64 {
	s = strings.TrimSpace(s)
	if s == NoClock {
		return math.NaN()
	}
	if strings.HasPrefix(s, "-") {
		return 0
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return math.NaN()
	}
	hr, err1 := strconv.Atoi(parts[0])
	min, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return math.NaN()
	}
	return float64(hr) + float64(min)/60.0
}

// FormatClock12 renders decimal hours as "HH:MM AM/PM". Hours outside
// [0,24) wrap; only time of day is reported. NaN renders as the absent
// placeholder.
func FormatClock12(hour float64) string {
	if math.IsNaN(hour) {
		return AbsentClock
	}
	hour = math.Mod(hour, 24)
	if hour < 0 {
		hour += 24
	}

	hrs := int(hour)
	// The epsilon keeps minute values that are exact in decimal
	// ("xx:59" parses to hrs + 59/60) from truncating down a minute;
	// representation error here can reach ~1e-13 minutes.
	mins := int((hour-float64(hrs))*60 + 1e-6)
	if mins == 60 {
		// A fractional part within epsilon of a whole hour carries.
		mins = 0
		hrs = (hrs + 1) % 24
	}

	meridiem := "AM"
	switch {
	case hrs > 12:
		meridiem = "PM"
		hrs -= 12
	case hrs == 12:
		meridiem = "PM"
	case hrs == 0:
		hrs = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hrs, mins, meridiem)
}

// correctClock shifts a clock reading (hours and minutes, as parsed)
// into the flight-origin frame by the signed timezone offset. The hour
// and minute parts are corrected separately, with the minute part
// truncated rather than rounded; fractional-hour offsets lose up to a
// minute, and the pinned tests depend on exactly that.
func correctClock(hr, min int, offset float64) float64 {
	hrCorrection := int(offset)
	minCorrection := (offset - float64(hrCorrection)) * 60
	return float64(hr-hrCorrection) + float64(int(float64(min)-minCorrection))/60.0
}

// mod24 reduces an hour value into [0,24). NaN passes through.
func mod24(hour float64) float64 {
	m := math.Mod(hour, 24)
	if m < 0 {
		m += 24
	}
	return m
}
