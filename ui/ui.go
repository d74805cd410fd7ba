// Package ui is the HTTP surface: a small JSON API over the pipeline.
package ui

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	fp "github.com/salahsky/flightprayer"
	"github.com/salahsky/flightprayer/cache"
	"github.com/salahsky/flightprayer/fa"
)

type Controller struct {
	FA       *fa.Flightaware
	Cache    *cache.TracklogCache
	Pipeline fp.Pipeline
	Log      zerolog.Logger
}

func NewRouter(ctl *Controller) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	api := r.Group("/api")
	api.GET("/flights/:ident/history", ctl.getHistory)
	api.POST("/schedule", ctl.postSchedule)
	return r
}

// GET /api/flights/:ident/history
func (ctl *Controller)getHistory(c *gin.Context) {
	ident := fa.NormalizeIdent(c.Param("ident"))
	entries,err := ctl.FA.History(c.Request.Context(), ident)
	if err != nil {
		ctl.Log.Warn().Err(err).Str("ident", ident).Msg("history lookup failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, historyResponse(ident, entries))
}

// POST /api/schedule
func (ctl *Controller)postSchedule(c *gin.Context) {
	req := ScheduleRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date,err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()
	ident := fa.NormalizeIdent(req.Ident)

	url := req.HistoryURL
	if url == "" {
		entries,err := ctl.FA.History(ctx, ident)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if req.HistoryIndex < 0 || req.HistoryIndex >= len(entries) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "history_index out of range"})
			return
		}
		url = entries[req.HistoryIndex].URL
	}

	rows := ctl.Cache.Get(ctx, url)
	if rows == nil {
		rows,err = ctl.FA.Tracklog(ctx, url)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		ctl.Cache.Set(ctx, url, rows)
	}

	plan,err := ctl.Pipeline.Plan(ctx, rows, fp.PlanInput{
		Date:           date,
		DepartureClock: req.Departure,
		Early:          req.Early,
	})
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, fp.ErrInsufficientTrackData) {
			status = http.StatusUnprocessableEntity
		}
		ctl.Log.Warn().Err(err).Str("ident", ident).Msg("plan failed")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctl.Log.Info().
		Str("ident", ident).
		Str("zone", plan.OriginZone).
		Int("points", len(plan.Track)).
		Msg("schedule computed")
	c.JSON(http.StatusOK, scheduleResponse(ident, plan))
}
