package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-privacy-pipeline/internal/client"
	"github.com/MKhiriev/go-privacy-pipeline/internal/config"
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("privacy-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, buildInfo(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	var c client.Client = app
	if err = c.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
