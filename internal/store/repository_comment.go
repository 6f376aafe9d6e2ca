// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/models"
)

type commentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by db.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{db: db, logger: logger}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(comment.TableName()).
		Columns("body", "user_id", "game_id", "created_at").
		Values(comment.Body, comment.UserID, comment.GameID, comment.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Comment{}, wrapBuildErr(err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&comment.ID); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Int64("game_id", comment.GameID).Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return comment, nil
}

func (r *commentRepository) ListComments(ctx context.Context, gameID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("c.id", "c.body", "c.user_id", "c.game_id", "c.created_at", "u.nick", "u.email").
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.game_id": gameID}).
		OrderBy("c.created_at", "c.id").
		ToSql()
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Int64("game_id", gameID).Msg("error listing comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 8)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Body, &c.UserID, &c.GameID, &c.CreatedAt, &c.AuthorNick, &c.AuthorEmail); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
