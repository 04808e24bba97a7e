package main

import (
	"fmt"
	"os"

	"github.com/mkarag/pubhouse/internal/auth"
	"github.com/mkarag/pubhouse/internal/config"
	"github.com/mkarag/pubhouse/internal/db"
	"github.com/mkarag/pubhouse/internal/excel"
	httphandler "github.com/mkarag/pubhouse/internal/http"
	"github.com/mkarag/pubhouse/internal/http/middleware"
	"github.com/mkarag/pubhouse/internal/logger"
	"github.com/mkarag/pubhouse/internal/pdf"
	"github.com/mkarag/pubhouse/internal/repository"
	"github.com/mkarag/pubhouse/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("failed to open database")
	}

	statsRepo := repository.NewStatsRepository(database)
	searchRepo := repository.NewSearchRepository(database)

	browseService := service.NewBrowseService(statsRepo, searchRepo)
	reportService := service.NewReportService(statsRepo, excel.NewGenerator(), pdf.NewGenerator())

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(browseService, reportService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("db", cfg.DB.Path).Msg("starting pubhouse api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
