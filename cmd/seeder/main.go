package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mkarag/pubhouse/internal/config"
	"github.com/mkarag/pubhouse/internal/generate"
	"github.com/mkarag/pubhouse/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	seeder := generate.NewSeeder(cfg, log)
	if err := seeder.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("seeding run aborted")
		os.Exit(1)
	}

	log.Info().Str("path", cfg.DB.Path).Msg("database seeded")
}
