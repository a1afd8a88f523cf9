package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-privacy-pipeline/internal/config"
	"github.com/MKhiriev/go-privacy-pipeline/internal/crypto"
	"github.com/MKhiriev/go-privacy-pipeline/internal/handler"
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/server"
	"github.com/MKhiriev/go-privacy-pipeline/internal/service"
	"github.com/MKhiriev/go-privacy-pipeline/internal/store"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("privacy-pipeline-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("storage_dir", cfg.Storage.Dir).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("catalog", cfg.Storage.CatalogDSN != "").
		Msg("received configs")

	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	keychain := crypto.NewKeyChainService(cfg.Storage.KDFIterations)
	storages, err := store.NewStorages(context.Background(), cfg.Storage, keychain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
