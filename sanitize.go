package flightprayer

import (
	"math"
	"strconv"
	"strings"

	"github.com/skypies/geo"
)

// The first and last few rows of a tracklog are systematically
// unreliable (taxi and ground noise around takeoff and landing), so the
// sanitizer drops them unconditionally.
const (
	DefaultHeadTrim = 5
	DefaultTailTrim = 15
)

// gapMarker is the literal the source injects into the position column
// when there is a hole in the data.
const gapMarker = "Gap"

// Sanitize cleans raw tracklog rows into an ordered Track, re-indexed
// from zero, using the default head/tail trims. Returns
// ErrInsufficientTrackData if nothing usable survives.
func Sanitize(rows []RawTrackRow) (Track, error) {
	return SanitizeTrim(rows, DefaultHeadTrim, DefaultTailTrim)
}

// SanitizeTrim is Sanitize with explicit trim sizes.
func SanitizeTrim(rows []RawTrackRow, headTrim, tailTrim int) (Track, error) {
	rows = dropArtifactRows(rows)

	if len(rows) <= headTrim+tailTrim {
		return nil, ErrInsufficientTrackData
	}
	rows = rows[headTrim : len(rows)-tailTrim]

	t := Track{}
	prevAltitude := 0.0
	for _,row := range rows {
		lat, ok1 := parseCoord(row.Lat)
		long, ok2 := parseCoord(row.Long)
		if !ok1 || !ok2 {
			continue
		}

		alt, ok := parseAltitude(row.Altitude)
		if !ok {
			alt = prevAltitude
		} else {
			prevAltitude = alt
		}

		t = append(t, Trackpoint{
			Index:       len(t),
			Latlong:     geo.Latlong{Lat: lat, Long: long},
			Altitude:    alt,
			Heading:     parseHeading(row.Course),
			RawClock:    row.Clock,
			FlightClock: math.NaN(),
		})
	}

	if len(t) < 1 {
		return nil, ErrInsufficientTrackData
	}
	return t, nil
}

// dropArtifactRows removes rows whose position column is not a position:
// facility-name artifacts (the source injects the reporting facility's
// label into the latitude column on handoff rows) and gap markers.
func dropArtifactRows(rows []RawTrackRow) []RawTrackRow {
	// A facility artifact row starts with the first five characters of
	// some reporting-facility label seen elsewhere in the table.
	prefixes := []string{}
	seen := map[string]bool{}
	for _,row := range rows {
		label := strings.TrimSpace(row.Facility)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		p := label
		if len(p) > 5 {
			p = p[:5]
		}
		prefixes = append(prefixes, p)
	}

	out := []RawTrackRow{}
	for _,row := range rows {
		if strings.Contains(row.Lat, gapMarker) {
			continue
		}
		artifact := false
		for _,p := range prefixes {
			if strings.Contains(row.Lat, p) {
				artifact = true
				break
			}
		}
		if !artifact {
			out = append(out, row)
		}
	}
	return out
}

// parseCoord reads a latitude/longitude off the front of a cell. The
// source doubles the value into one cell ("43.650743.6507"), so only
// the leading six characters are meaningful.
func parseCoord(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 6 {
		s = s[:6]
	}
	f,err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parseAltitude handles the doubled-token quirk in the altitude column:
// the cell may hold a value concatenated with itself ("350350"), which
// reduceRepeated collapses before parsing.
func parseAltitude(s string) (float64, bool) {
	s = reduceRepeated(strings.TrimSpace(s))
	f,err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// reduceRepeated collapses a string to its minimal repeating unit:
// "350350" -> "350", "3535" -> "35", "12" -> "12".
func reduceRepeated(s string) string {
	for i := 1; i <= len(s)/2; i++ {
		part := s[:i]
		if s == strings.Repeat(part, len(s)/len(part)) {
			return part
		}
	}
	return s
}

// parseHeading extracts the numeric run from a course cell like "134°"
// or "► 134°". Unparsable cells come back as 0.
func parseHeading(s string) float64 {
	start, end := -1, -1
	for i,r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			if start < 0 {
				start = i
			}
			end = i + 1
		} else if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 0
	}
	f,err := strconv.ParseFloat(s[start:end], 64)
	if err != nil {
		return 0
	}
	return math.Mod(f, 360)
}
