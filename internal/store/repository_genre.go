// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/models"
)

type genreRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGenreRepository constructs a [GenreRepository] backed by db.
func NewGenreRepository(db *DB, logger *logger.Logger) GenreRepository {
	logger.Debug().Msg("creating genre repository")
	return &genreRepository{db: db, logger: logger}
}

func (r *genreRepository) ListGenres(ctx context.Context) ([]models.Genre, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "genre").
		From(models.Genre{}.TableName()).
		OrderBy("genre").
		ToSql()
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.ListGenres").Msg("error listing genres")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	genres := make([]models.Genre, 0, 8)
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		genres = append(genres, g)
	}

	return genres, rows.Err()
}

func (r *genreRepository) GetGenre(ctx context.Context, id int64) (models.Genre, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "genre").
		From(models.Genre{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Genre{}, wrapBuildErr(err)
	}

	var g models.Genre
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Genre{}, ErrGenreNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.GetGenre").Int64("genre_id", id).Msg("error getting genre")
		return models.Genre{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return g, nil
}

func (r *genreRepository) CreateGenre(ctx context.Context, name string) (models.Genre, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(models.Genre{}.TableName()).
		Columns("genre").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Genre{}, wrapBuildErr(err)
	}

	g := models.Genre{Name: name}
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&g.ID); err != nil {
		log.Err(err).Str("func", "*genreRepository.CreateGenre").Msg("error inserting genre")
		if isUniqueViolation(err) {
			return models.Genre{}, ErrGenreAlreadyExists
		}
		return models.Genre{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return g, nil
}
