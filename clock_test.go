package flightprayer

import (
	"fmt"
	"math"
	"testing"
)

func TestParseClock12(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
	}{
		{"12:00 AM", 0.0},
		{"12:00 PM", 12.0},
		{"01:30 AM", 1.5},
		{"1:30 AM", 1.5},
		{"11:45 PM", 23.75},
		{"12:30 AM", 0.5},
		{"09:41 PM", 21.0 + 41.0/60.0},
		{"Sun 09:41:25 PM", 21.0 + 41.0/60.0}, // weekday prefix + seconds, as the tracklog writes it
		{"Mon 12:05 AM", 5.0 / 60.0},
	}
	for _,test := range tests {
		if actual := ParseClock12(test.in); math.Abs(actual-test.expected) > 1e-9 {
			t.Errorf("ParseClock12(%q): expected %f, got %f", test.in, test.expected, actual)
		}
	}

	for _,bad := range []string{NoClock, "", "garbage", "25:00", "11:45 XX"} {
		if actual := ParseClock12(bad); !math.IsNaN(actual) {
			t.Errorf("ParseClock12(%q): expected NaN, got %f", bad, actual)
		}
	}
}

func TestParseClock24(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
	}{
		{"05:12", 5.2},
		{"13:05", 13.0 + 5.0/60.0},
		{"00:00", 0.0},
		{"-3:15", 0.0}, // the astronomical routine's out-of-range marker
	}
	for _,test := range tests {
		if actual := ParseClock24(test.in); math.Abs(actual-test.expected) > 1e-9 {
			t.Errorf("ParseClock24(%q): expected %f, got %f", test.in, test.expected, actual)
		}
	}
	if !math.IsNaN(ParseClock24(NoClock)) {
		t.Errorf("ParseClock24(sentinel): expected NaN")
	}
}

// The 12-hour round trip must be exact for every minute and both
// meridiems, including the noon/midnight boundaries.
func TestClock12RoundTrip(t *testing.T) {
	for _,meridiem := range []string{"AM", "PM"} {
		for hr := 1; hr <= 12; hr++ {
			for min := 0; min < 60; min++ {
				s := fmt.Sprintf("%02d:%02d %s", hr, min, meridiem)
				if actual := FormatClock12(ParseClock12(s)); actual != s {
					t.Fatalf("round trip: %q came back as %q", s, actual)
				}
			}
		}
	}
}

func TestFormatClock12(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0.0, "12:00 AM"},
		{12.0, "12:00 PM"},
		{24.0, "12:00 AM"}, // day carry ignored; only time of day reported
		{25.5, "01:30 AM"},
		{-1.0, "11:00 PM"},
		{13.75, "01:45 PM"},
		{math.NaN(), AbsentClock},
		// A fractional part within epsilon of the next hour carries
		// instead of rendering minute 60.
		{9.99999999999, "10:00 AM"},
		{11.99999999999, "12:00 PM"},
		{23.99999999999, "12:00 AM"},
	}
	for _,test := range tests {
		if actual := FormatClock12(test.in); actual != test.expected {
			t.Errorf("FormatClock12(%f): expected %q, got %q", test.in, test.expected, actual)
		}
	}
}

func TestCorrectClock(t *testing.T) {
	// 21:30 shifted by a whole-hour offset.
	if actual := correctClock(21, 30, 5); math.Abs(actual-16.5) > 1e-9 {
		t.Errorf("whole-hour offset: got %f", actual)
	}
	// Half-hour offset splits across the hour and minute parts.
	if actual := correctClock(21, 30, 5.5); math.Abs(actual-16.0) > 1e-9 {
		t.Errorf("half-hour offset: got %f", actual)
	}
	// Negative offsets shift the other way.
	if actual := correctClock(10, 0, -4); math.Abs(actual-14.0) > 1e-9 {
		t.Errorf("negative offset: got %f", actual)
	}
}
