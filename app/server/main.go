package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	fp "github.com/salahsky/flightprayer"
	"github.com/salahsky/flightprayer/cache"
	"github.com/salahsky/flightprayer/config"
	"github.com/salahsky/flightprayer/fa"
	"github.com/salahsky/flightprayer/salat"
	"github.com/salahsky/flightprayer/tz"
	"github.com/salahsky/flightprayer/ui"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg,err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log = log.Level(zerolog.DebugLevel)
	}

	tracklogCache,err := cache.New(cfg.RedisURL, cfg.CacheTTL, log)
	if err != nil {
		log.Fatal().Err(err).Str("url", cfg.RedisURL).Msg("redis setup failed")
	}

	ctl := &ui.Controller{
		FA:    &fa.Flightaware{Log: log},
		Cache: tracklogCache,
		Pipeline: fp.Pipeline{
			Salat:         &salat.AladhanClient{Method: cfg.PrayerMethod, Log: log},
			Zones:         tz.LatlongResolver{},
			ReferenceZone: cfg.ReferenceZone,
		},
		Log: log,
	}

	r := ui.NewRouter(ctl)
	log.Info().Str("addr", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
