// Package cache is a small redis-backed store for fetched tracklogs, so
// repeated schedule requests for the same flight don't re-scrape the
// source. A nil client degrades to a no-op; the pipeline never needs
// redis to run.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	fp "github.com/salahsky/flightprayer"
)

type TracklogCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// New connects to redisURL ("redis://host:port/db"); an empty URL
// yields a disabled cache.
func New(redisURL string, ttl time.Duration, log zerolog.Logger) (*TracklogCache, error) {
	c := &TracklogCache{ttl: ttl, log: log}
	if redisURL == "" {
		return c, nil
	}
	opts,err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	c.rdb = redis.NewClient(opts)
	return c, nil
}

func (c *TracklogCache)Enabled() bool { return c != nil && c.rdb != nil }

// Get returns the cached rows for a tracklog URL, or nil on any miss or
// error; cache failures are logged, never propagated.
func (c *TracklogCache)Get(ctx context.Context, url string) []fp.RawTrackRow {
	if !c.Enabled() {
		return nil
	}
	data,err := c.rdb.Get(ctx, key(url)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("url", url).Msg("tracklog cache get failed")
		}
		return nil
	}
	rows := []fp.RawTrackRow{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil
	}
	return rows
}

func (c *TracklogCache)Set(ctx context.Context, url string, rows []fp.RawTrackRow) {
	if !c.Enabled() {
		return
	}
	data,err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(url), data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("tracklog cache set failed")
	}
}

func key(url string) string { return "tracklog:" + url }
