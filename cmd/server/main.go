package main

import (
	"context"
	"fmt"

	"github.com/drivenpass/drivenpass/internal/config"
	"github.com/drivenpass/drivenpass/internal/crypto"
	myHTTP "github.com/drivenpass/drivenpass/internal/handler/http"
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/server"
	"github.com/drivenpass/drivenpass/internal/service"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("drivenpass-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	cipher, err := crypto.NewSecretCipher(cfg.App.CipherSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret cipher")
	}

	services := service.NewServices(storages, *cfg, cipher, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
