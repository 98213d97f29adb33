package main

import (
	"os"
	"time"

	"precificacao/internal/config"
	"precificacao/internal/infra"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Seeds the demo dataset into the configured SQLite file and exits. Safe to
// run repeatedly: tables that already hold rows are left alone.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	if err := infra.SeedDemo(db); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Str("path", cfg.DatabasePath).Msg("demo data seeded")
}
