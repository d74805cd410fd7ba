// One-shot command: resolve a flight, fetch its most recent tracklog,
// and print the in-flight prayer schedule.
//
//	go run ./app/cli -flight UA123 -date 2025-08-01 -departure "09:45 PM"
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	fp "github.com/salahsky/flightprayer"
	"github.com/salahsky/flightprayer/config"
	"github.com/salahsky/flightprayer/fa"
	"github.com/salahsky/flightprayer/salat"
	"github.com/salahsky/flightprayer/tz"
)

var (
	fFlight    = flag.String("flight", "", "flight number, e.g. UA123")
	fDate      = flag.String("date", "", "flight date, YYYY-MM-DD")
	fDeparture = flag.String("departure", "", "declared departure, e.g. \"09:45 PM\" (origin-local)")
	fEarly     = flag.Bool("early", false, "flight left ahead of the declared time")
	fIndex     = flag.Int("history", 0, "which past flight to use (0 = most recent)")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *fFlight == "" || *fDate == "" || *fDeparture == "" {
		flag.Usage()
		os.Exit(2)
	}
	date,err := time.Parse("2006-01-02", *fDate)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -date")
	}

	cfg,err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	ctx,cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := &fa.Flightaware{Log: log}
	entries,err := client.History(ctx, *fFlight)
	if err != nil {
		log.Fatal().Err(err).Msg("history lookup failed")
	}
	if *fIndex < 0 || *fIndex >= len(entries) {
		log.Fatal().Int("have", len(entries)).Msg("-history out of range")
	}
	entry := entries[*fIndex]
	log.Info().Str("date", entry.Date).Str("from", entry.Origin).Str("to", entry.Destination).
		Msg("using recorded flight")

	rows,err := client.Tracklog(ctx, entry.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("tracklog fetch failed")
	}

	pipeline := fp.Pipeline{
		Salat:         &salat.AladhanClient{Method: cfg.PrayerMethod, Log: log},
		Zones:         tz.LatlongResolver{},
		ReferenceZone: cfg.ReferenceZone,
	}
	plan,err := pipeline.Plan(ctx, rows, fp.PlanInput{
		Date:           date,
		DepartureClock: *fDeparture,
		Early:          *fEarly,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("plan failed")
	}

	fmt.Printf("%s on %s  (%d track points, origin zone %s)\n\n",
		fa.NormalizeIdent(*fFlight), *fDate, len(plan.Track), plan.OriginZone)
	for _,e := range plan.Schedule {
		qibla := ""
		if e.Index >= 0 && !math.IsNaN(e.Qibla.Relative) {
			qibla = fmt.Sprintf("  qibla %+.0f° of nose (%.0f° abs)", e.Qibla.Relative, e.Qibla.Absolute)
		}
		fmt.Printf("  %s%s\n", e, qibla)
	}
}
