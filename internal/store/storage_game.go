// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/models"
)

// gameStorage is the default implementation of [GameStorage].
//
// Reads and flag updates go straight to the repository. CreateGame keeps
// the row and the image files consistent: the row is inserted inside a
// transaction that is only committed after every file is written.
type gameStorage struct {
	db         *DB
	repository GameRepository
	assets     AssetStorage
	logger     *logger.Logger
}

// NewGameStorage constructs a [GameStorage] over db and assets.
func NewGameStorage(db *DB, repository GameRepository, assets AssetStorage, logger *logger.Logger) GameStorage {
	logger.Debug().Msg("creating game storage")
	return &gameStorage{
		db:         db,
		repository: repository,
		assets:     assets,
		logger:     logger,
	}
}

func (s *gameStorage) GetGame(ctx context.Context, id int64) (models.Game, error) {
	return s.repository.GetGame(ctx, id)
}

func (s *gameStorage) ListGames(ctx context.Context, filter GameFilter) ([]models.Game, error) {
	return s.repository.ListGames(ctx, filter)
}

func (s *gameStorage) SetSelling(ctx context.Context, id int64, selling bool) error {
	return s.repository.SetSelling(ctx, id, selling)
}

// CreateGame inserts game and writes its images.
//
// Steps:
//  1. both image paths are checked up front, a taken path yields an
//     [AssetExistsError] before anything is written;
//  2. the row is inserted in a transaction;
//  3. the images are written;
//  4. the transaction is committed.
//
// A failure in 2-4 rolls the transaction back and removes written files. If
// a file cannot be removed the error also matches [ErrIntegrity].
func (s *gameStorage) CreateGame(ctx context.Context, game models.Game, cover, wide *models.Upload) (models.Game, error) {
	log := logger.FromContext(ctx)

	type pending struct {
		kind   AssetKind
		path   string
		upload *models.Upload
	}
	uploads := make([]pending, 0, 2)
	if cover != nil {
		uploads = append(uploads, pending{kind: AssetCover, path: s.assets.Path(AssetCover, cover.Filename), upload: cover})
	}
	if wide != nil {
		uploads = append(uploads, pending{kind: AssetWide, path: s.assets.Path(AssetWide, wide.Filename), upload: wide})
	}

	for _, u := range uploads {
		if u.path == "" {
			return models.Game{}, ErrInvalidAssetName
		}
		exists, err := s.assets.Exists(ctx, u.path)
		if err != nil {
			return models.Game{}, err
		}
		if exists {
			return models.Game{}, &AssetExistsError{Kind: u.kind, Path: u.path}
		}
		switch u.kind {
		case AssetCover:
			game.Img = u.path
		case AssetWide:
			game.ImgWide = u.path
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*gameStorage.CreateGame").Msg("error beginning transaction")
		return models.Game{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(ctx, tx)

	id, err := s.repository.InsertGame(ctx, tx, game)
	if err != nil {
		return models.Game{}, err
	}
	game.ID = id

	written := make([]string, 0, len(uploads))
	for _, u := range uploads {
		if err = s.assets.Write(ctx, u.kind, u.path, u.upload.Data); err != nil {
			log.Err(err).Str("func", "*gameStorage.CreateGame").Str("path", u.path).Msg("error writing asset, rolling back")
			return models.Game{}, s.undo(ctx, written, err)
		}
		written = append(written, u.path)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*gameStorage.CreateGame").Msg("error committing transaction")
		return models.Game{}, s.undo(ctx, written, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return game, nil
}

// undo removes written files and returns cause, joined with [ErrIntegrity]
// when some file stays behind.
func (s *gameStorage) undo(ctx context.Context, written []string, cause error) error {
	var leftovers []error
	for _, p := range written {
		if err := s.assets.Remove(ctx, p); err != nil {
			leftovers = append(leftovers, fmt.Errorf("%s: %w", p, err))
		}
	}
	if len(leftovers) == 0 {
		return cause
	}

	logger.FromContext(ctx).Error().
		Bool("integrity", true).
		Err(errors.Join(leftovers...)).
		Msg("orphaned asset files after failed game creation")
	return fmt.Errorf("%w: %w: %w", ErrIntegrity, cause, errors.Join(leftovers...))
}
