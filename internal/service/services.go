// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the store's business rules: authentication and
// tokens, the access policy, catalog browsing and management, search and
// checkout.
package service

import (
	"github.com/MKhiriev/game-store/internal/config"
	"github.com/MKhiriev/game-store/internal/crypto"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/internal/validators"
	"github.com/MKhiriev/game-store/models"
)

type Services struct {
	AuthService     AuthService
	CatalogService  CatalogService
	CheckoutService CheckoutService
	AppInfoService  AppInfoService
}

// NewServices wires the services with the real clock and a crypto/rand
// backed random source.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	clock := utils.NewRealClock()
	random := utils.NewCryptoRandom()
	validator := validators.NewFormValidator()
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordCost)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, validator, clock, cfg.App, logger),
		CatalogService:  NewCatalogService(storages.GameStorage, storages.GenreRepository, storages.CommentRepository, validator, clock, random, logger),
		CheckoutService: NewCheckoutService(storages.GameStorage, random, logger),
		AppInfoService:  NewAppInfoService(buildInfo),
	}
}
