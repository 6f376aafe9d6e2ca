// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/models"
)

var gameColumns = []string{
	"id", "title", "price", "description", "developers", "release_date",
	"rating", "genre_id", "img", "img_wide", "is_selling",
}

type gameRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGameRepository constructs a [GameRepository] backed by db.
func NewGameRepository(db *DB, logger *logger.Logger) GameRepository {
	logger.Debug().Msg("creating game repository")
	return &gameRepository{db: db, logger: logger}
}

func (r *gameRepository) GetGame(ctx context.Context, id int64) (models.Game, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(gameColumns...).
		From(models.Game{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Game{}, wrapBuildErr(err)
	}

	game, err := scanGame(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Game{}, ErrGameNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.GetGame").Int64("game_id", id).Msg("error getting game")
		return models.Game{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return game, nil
}

func (r *gameRepository) ListGames(ctx context.Context, filter GameFilter) ([]models.Game, error) {
	log := logger.FromContext(ctx)

	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []models.Game{}, nil
	}

	query, args, err := buildListGamesQuery(r.db.builder, filter)
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.ListGames").Msg("error listing games")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	games := make([]models.Game, 0, 16)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			log.Err(err).Str("func", "*gameRepository.ListGames").Msg("error scanning game")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		games = append(games, game)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return games, nil
}

func (r *gameRepository) SetSelling(ctx context.Context, id int64, selling bool) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Game{}.TableName()).
		Set("is_selling", selling).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapBuildErr(err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.SetSelling").Int64("game_id", id).Msg("error updating game")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (r *gameRepository) InsertGame(ctx context.Context, tx *sql.Tx, game models.Game) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(game.TableName()).
		Columns(gameColumns[1:]...).
		Values(game.Title, game.Price, game.Description, game.Developers, game.ReleaseDate,
			game.Rating, game.GenreID, game.Img, game.ImgWide, game.IsSelling).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, wrapBuildErr(err)
	}

	var id int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*gameRepository.InsertGame").Str("title", game.Title).Msg("error inserting game")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func buildListGamesQuery(builder sq.StatementBuilderType, filter GameFilter) (string, []any, error) {
	q := builder.
		Select(gameColumns...).
		From(models.Game{}.TableName()).
		OrderBy("title", "id")

	if filter.OnlySelling {
		q = q.Where(sq.Eq{"is_selling": true})
	}
	if filter.WithCover {
		q = q.Where(sq.NotEq{"img": ""})
	}
	if filter.WithWide {
		q = q.Where(sq.NotEq{"img_wide": ""})
	}
	if filter.TitleLike != "" {
		q = q.Where(sq.Expr(`title LIKE ? ESCAPE '\'`, "%"+escapeLike(filter.TitleLike)+"%"))
	}
	if len(filter.IDs) > 0 {
		q = q.Where(sq.Eq{"id": filter.IDs})
	}

	return q.ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (models.Game, error) {
	var g models.Game
	err := row.Scan(&g.ID, &g.Title, &g.Price, &g.Description, &g.Developers, &g.ReleaseDate,
		&g.Rating, &g.GenreID, &g.Img, &g.ImgWide, &g.IsSelling)
	return g, err
}
