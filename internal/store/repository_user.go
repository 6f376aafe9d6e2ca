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

var userColumns = []string{"id", "nick", "email", "password", "is_admin", "modified_at"}

// userRepository is the SQL implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned id.
//
// Error handling:
//   - unique violation on email → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("nick", "email", "password", "is_admin", "modified_at").
		Values(user.Nick, user.Email, user.PasswordHash, user.IsAdmin, user.ModifiedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.User{}, wrapBuildErr(err)
	}

	// create user in db
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return models.User{}, wrapBuildErr(err)
	}

	var u models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.UserID, &u.Nick, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.ModifiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return u, nil
}

// SetAdmin updates the admin flag of the user with the given email.
func (r *userRepository) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.User{}.TableName()).
		Set("is_admin", isAdmin).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return wrapBuildErr(err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetAdmin").Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNoUserWasFound
	}
	return nil
}
