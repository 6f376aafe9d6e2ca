// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/models"
	"github.com/redis/go-redis/v9"
)

// cachedGameStorage is a read-through cache in front of a [GameStorage].
//
// Only single-game lookups are cached; they back the product page, the
// comment pages and unlist/relist. Cart and checkout go through ListGames,
// which is not cached. Cache failures are logged and fall through to the wrapped
// storage, so Redis being down never fails a request.
type cachedGameStorage struct {
	GameStorage
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedGameStorage wraps next with a Redis cache holding games for ttl.
func NewCachedGameStorage(next GameStorage, client *redis.Client, ttl time.Duration, logger *logger.Logger) GameStorage {
	logger.Debug().Dur("ttl", ttl).Msg("creating cached game storage")
	return &cachedGameStorage{
		GameStorage: next,
		client:      client,
		ttl:         ttl,
		logger:      logger,
	}
}

func gameCacheKey(id int64) string {
	return fmt.Sprintf("game:%d", id)
}

func (c *cachedGameStorage) GetGame(ctx context.Context, id int64) (models.Game, error) {
	log := logger.FromContext(ctx)
	key := gameCacheKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var game models.Game
		if jsonErr := json.Unmarshal(data, &game); jsonErr == nil {
			return game, nil
		}
		log.Warn().Str("func", "*cachedGameStorage.GetGame").Str("key", key).Msg("dropping undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("func", "*cachedGameStorage.GetGame").Msg("cache read failed")
	}

	game, err := c.GameStorage.GetGame(ctx, id)
	if err != nil {
		return models.Game{}, err
	}

	if data, err = json.Marshal(game); err == nil {
		if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Warn().Err(err).Str("func", "*cachedGameStorage.GetGame").Msg("cache write failed")
		}
	}

	return game, nil
}

// SetSelling invalidates the cached game after a successful update.
func (c *cachedGameStorage) SetSelling(ctx context.Context, id int64, selling bool) error {
	if err := c.GameStorage.SetSelling(ctx, id, selling); err != nil {
		return err
	}

	if err := c.client.Del(ctx, gameCacheKey(id)).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cachedGameStorage.SetSelling").Msg("cache invalidation failed")
	}
	return nil
}

// NewRedisClient parses url, connects and pings.
func NewRedisClient(ctx context.Context, url string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		client.Close()
		return nil, err
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}
