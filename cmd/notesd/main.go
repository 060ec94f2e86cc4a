package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/handler"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/server"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/internal/store"
	"github.com/MKhiriev/go-secret-notes/internal/workers"
	"github.com/MKhiriev/go-secret-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("notesd")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = rand.Text()
		log.Warn().Msg("no token sign key configured, issued tokens are valid until restart only")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(ctx, storages, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(
		workers.NewSessionSweeper(services.Sessions, cfg.App, cfg.Workers, log),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.RunServer(gctx) })
	g.Go(func() error { return jobs.Run(gctx) })

	err = g.Wait()
	n := services.Sessions.InvalidateAll()
	log.Info().Int("sessions", n).Msg("sessions invalidated on shutdown")
	if err != nil {
		log.Error().Err(err).Msg("daemon stopped with error")
		return
	}
	log.Info().Msg("daemon stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
