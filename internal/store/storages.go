// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer: SQL repositories for users,
// games, genres and comments, the image file store, and the optional Redis
// cache in front of the catalog.
package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/game-store/internal/config"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every storage component handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	GenreRepository   GenreRepository
	CommentRepository CommentRepository
	GameStorage       GameStorage

	db    *DB
	cache *redis.Client
}

// NewStorages connects to the database (and Redis when configured) and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	storages := &Storages{
		UserRepository:    NewUserRepository(db, log),
		GenreRepository:   NewGenreRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		db:                db,
	}

	assets := NewFileAssetStorage(cfg.Files.AssetsDir, log)
	storages.GameStorage = NewGameStorage(db, NewGameRepository(db, log), assets, log)

	if cfg.Cache.RedisURL != "" {
		client, err := NewRedisClient(ctx, cfg.Cache.RedisURL, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		storages.cache = client
		storages.GameStorage = NewCachedGameStorage(storages.GameStorage, client, cfg.Cache.TTL, log)
	}

	return storages, nil
}

// Migrate applies the schema migrations.
func (s *Storages) Migrate() error {
	return s.db.Migrate()
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.cache != nil {
		errs = append(errs, s.cache.Close())
	}
	errs = append(errs, s.db.Close())
	return errors.Join(errs...)
}
