// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/game-store/internal/config"
	"github.com/MKhiriev/game-store/internal/handler"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/server"
	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/session"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("game-store", "").Fatal().Err(err).Msg("error getting configs")
	}
	cfg.App.Version = buildInfo.Version

	log := logger.NewLogger("game-store", cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("assets", cfg.Storage.Files.AssetsDir).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	if err = storages.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(storages, *cfg, buildInfo, log)
	sessions := session.NewManager(cfg.App.SessionKey, utils.NewUUIDGenerator())

	handlers, err := handler.NewHandlers(services, sessions, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
