// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/migrations"
	"github.com/MKhiriev/game-store/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, migrations.DialectPostgres, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{Nick: "neo", Email: "neo@matrix.io", PasswordHash: "hash", ModifiedAt: now}

	mock.ExpectQuery(`INSERT INTO users \(nick,email,password,is_admin,modified_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
		WithArgs("neo", "neo@matrix.io", "hash", false, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "neo@matrix.io", created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "neo@matrix.io"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "neo@matrix.io"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestFindUserByEmail(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
		want    models.User
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, nick, email, password, is_admin, modified_at FROM users WHERE email = \$1`).
					WithArgs("neo@matrix.io").
					WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(3), "neo", "neo@matrix.io", "hash", true, now))
			},
			want: models.User{UserID: 3, Nick: "neo", Email: "neo@matrix.io", PasswordHash: "hash", IsAdmin: true, ModifiedAt: now},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrNoUserWasFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db, logger.Nop())
			tt.setup(mock)

			got, err := repo.FindUserByEmail(context.Background(), "neo@matrix.io")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE users SET is_admin = \$1 WHERE email = \$2`).
		WithArgs(true, "neo@matrix.io").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users").
		WithArgs(true, "ghost@matrix.io").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SetAdmin(context.Background(), "neo@matrix.io", true))
	assert.ErrorIs(t, repo.SetAdmin(context.Background(), "ghost@matrix.io", true), ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
