package main

import (
	"fmt"

	"github.com/akhmetshin/warranty-keeper/internal/adapter"
	"github.com/akhmetshin/warranty-keeper/internal/client"
	"github.com/akhmetshin/warranty-keeper/internal/config"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/service"
	"github.com/akhmetshin/warranty-keeper/internal/store"
	"github.com/akhmetshin/warranty-keeper/internal/tui"
	"github.com/akhmetshin/warranty-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("warranty-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg.App, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	backgroundWorkers := workers.NewWorkers(services, cfg.App, cfg.Workers, log)

	app, err := client.NewApp(services, ui, backgroundWorkers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
