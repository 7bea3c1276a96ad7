// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/beyond-client/internal/adapter"
	"github.com/MKhiriev/beyond-client/internal/client"
	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/internal/tui"
	"github.com/MKhiriev/beyond-client/models"
)

const clientRole = "beyond-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log := logger.NewClientLogger(clientRole, "")
		log.Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger(clientRole, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(ctx, storages, serverAdapter, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, storages, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Str("api", cfg.Adapter.HTTPAddress).
		Msg("starting client")

	if err = app.Run(ctx); err != nil {
		stop()
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
		os.Exit(1)
	}
}
