package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/handler"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/server"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/session"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/internal/workers"
	"github.com/MKhiriev/go-recipe-book/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("recipe-book-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("sessions", cfg.Storage.Sessions.Backend).
		Dur("session_ttl", cfg.Storage.Sessions.TTL).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	sessions, err := session.NewStore(ctx, cfg.Storage.Sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}

	storages := store.NewStorages(db, validators.NewRecipeBookValidator(), log)

	appCfg := cfg.App
	if appCfg.Version == "" {
		appCfg.Version = buildVersion
	}
	services, err := service.NewServices(storages, appCfg, buildInfo(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, sessions, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var background []workers.Worker
	if memory, ok := sessions.(*session.MemoryStore); ok && cfg.Storage.Sessions.TTL > 0 {
		background = append(background, workers.NewSessionSweeper(memory, cfg.Storage.Sessions.TTL, log))
	}
	go workers.NewWorkers(background...).Run(ctx)

	srv.RunServer()
}

func buildInfo() models.AppBuildInfo {
	return models.AppBuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}
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
