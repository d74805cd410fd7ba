package ui

import (
	"math"

	fp "github.com/salahsky/flightprayer"
	"github.com/salahsky/flightprayer/fa"
)

type HistoryResponse struct {
	Ident   string           `json:"ident"`
	Flights []HistoryFlight  `json:"flights"`
}

type HistoryFlight struct {
	URL         string `json:"url"`
	Date        string `json:"date"`
	Aircraft    string `json:"aircraft"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
}

type ScheduleRequest struct {
	Ident        string `json:"ident" binding:"required"`
	HistoryURL   string `json:"history_url"`  // optional; takes precedence
	HistoryIndex int    `json:"history_index"` // which past flight, 0 = most recent
	Date         string `json:"date" binding:"required"`      // "2006-01-02"
	Departure    string `json:"departure" binding:"required"` // "HH:MM AM/PM", origin-local
	Early        bool   `json:"early"`
}

type ScheduleEntryResponse struct {
	Prayer        string   `json:"prayer"`
	TrackIndex    *int     `json:"track_index"`
	TimeHr        *float64 `json:"time_hr"`
	Time12h       string   `json:"time_12h"`
	QiblaAbsolute *float64 `json:"qibla_absolute_deg"`
	QiblaRelative *float64 `json:"qibla_relative_deg"`
}

type ScheduleResponse struct {
	Ident          string                  `json:"ident"`
	OriginZone     string                  `json:"origin_zone"`
	TimezoneOffset float64                 `json:"timezone_offset_hr"`
	TimeCorrection *float64                `json:"time_correction_hr"`
	TrackPoints    int                     `json:"track_points"`
	Schedule       []ScheduleEntryResponse `json:"schedule"`
}

// JSON has no NaN, so absent values travel as nulls.

func floatPtr(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}

func historyResponse(ident string, entries []fa.HistoryEntry) HistoryResponse {
	out := HistoryResponse{Ident: ident, Flights: []HistoryFlight{}}
	for _,e := range entries {
		out.Flights = append(out.Flights, HistoryFlight{
			URL:         e.URL,
			Date:        e.Date,
			Aircraft:    e.Aircraft,
			Origin:      e.Origin,
			Destination: e.Destination,
			Departure:   e.Departure,
			Arrival:     e.Arrival,
		})
	}
	return out
}

func scheduleResponse(ident string, plan *fp.Plan) ScheduleResponse {
	out := ScheduleResponse{
		Ident:          ident,
		OriginZone:     plan.OriginZone,
		TimezoneOffset: plan.TimezoneOffset,
		TimeCorrection: floatPtr(plan.TimeCorrection),
		TrackPoints:    len(plan.Track),
		Schedule:       []ScheduleEntryResponse{},
	}
	for _,e := range plan.Schedule {
		entry := ScheduleEntryResponse{
			Prayer:  e.Prayer.String(),
			Time12h: e.Clock,
			TimeHr:  floatPtr(e.Hour),
		}
		if e.Index >= 0 {
			idx := e.Index
			entry.TrackIndex = &idx
			entry.QiblaAbsolute = floatPtr(e.Qibla.Absolute)
			entry.QiblaRelative = floatPtr(e.Qibla.Relative)
		}
		out.Schedule = append(out.Schedule, entry)
	}
	return out
}
