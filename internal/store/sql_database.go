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
	"github.com/MKhiriev/game-store/internal/config"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// DB wraps the connection pool together with the query builder configured
// for its dialect.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// newDB wraps an open connection. dialect is one of the migrations.Dialect*
// constants.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	placeholders := sq.PlaceholderFormat(sq.Question)
	if dialect == migrations.DialectPostgres {
		placeholders = sq.Dollar
	}

	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholders),
		logger:  log,
	}
}

// NewConnect opens the database named by cfg.DSN. "postgres://" and
// "postgresql://" DSNs use pgx; "sqlite://", "file:" and ":memory:" DSNs
// use SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := cfg.DSN
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return NewConnectSQLite(ctx, dsn, log)
	default:
		log.Error().Str("func", "NewConnect").Msg("unsupported DSN scheme")
		return nil, ErrUnsupportedDSN
	}
}

// Migrate applies the embedded schema migrations for the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the migrations dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// isUniqueViolation reports whether err is a unique constraint failure on
// either supported backend.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

// rollback is deferred after BeginTx; it is a no-op after a commit.
func rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Err(err).Str("func", "rollback").Msg("error rolling back transaction")
	}
}

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
