// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/game-store/internal/config"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	// assetsDir is the root of the uploaded images, served under /img/.
	assetsDir string
	// staticDir is served under /static/ when set.
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg config.Server, assetsDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		assetsDir: assetsDir,
		staticDir: cfg.StaticDir,
		logger:    logger,
	}
}
