package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-nas-keeper/internal/adapter"
	"github.com/MKhiriev/go-nas-keeper/internal/client"
	"github.com/MKhiriev/go-nas-keeper/internal/config"
	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/service"
	"github.com/MKhiriev/go-nas-keeper/internal/store"
	"github.com/MKhiriev/go-nas-keeper/internal/tui"
	"github.com/MKhiriev/go-nas-keeper/internal/workers"
	"github.com/MKhiriev/go-nas-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("nas-keeper", cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", info.String()).Msg("starting client")
	services := service.NewClientServices(storages, cfg.Vault, info, log)
	connector := adapter.NewSSHConnector(cfg.Adapter, log)
	background := workers.NewClientWorkers(cfg.Workers, storages, log)

	ui := tui.New(services, connector, background.History, cfg.Shell, log)

	app, err := client.NewApp(ui, background, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		stop()
		os.Exit(1)
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
