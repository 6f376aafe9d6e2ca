// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/game-store/internal/config"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages returns storages over a migrated in-memory database and
// a temporary assets directory.
func newSQLiteStorages(t *testing.T) (*Storages, string) {
	t.Helper()
	assets := t.TempDir()

	s, err := NewStorages(context.Background(), config.Storage{
		DB:    config.DB{DSN: ":memory:"},
		Files: config.Files{AssetsDir: assets},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate())

	return s, assets
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{DSN: "mysql://localhost/store"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestSQLite_UsersRoundTrip(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.UserRepository.CreateUser(ctx, models.User{
		Nick: "neo", Email: "neo@matrix.io", PasswordHash: "hash", ModifiedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Nick: "neo2", Email: "neo@matrix.io", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	require.NoError(t, s.UserRepository.SetAdmin(ctx, "neo@matrix.io", true))
	found, err := s.UserRepository.FindUserByEmail(ctx, "neo@matrix.io")
	require.NoError(t, err)
	assert.True(t, found.IsAdmin)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = s.UserRepository.FindUserByEmail(ctx, "nobody@matrix.io")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_CatalogRoundTrip(t *testing.T) {
	s, assets := newSQLiteStorages(t)
	ctx := context.Background()

	genre, err := s.GenreRepository.CreateGenre(ctx, "Shooter")
	require.NoError(t, err)
	_, err = s.GenreRepository.CreateGenre(ctx, "Shooter")
	assert.ErrorIs(t, err, ErrGenreAlreadyExists)

	halo, err := s.GameStorage.CreateGame(ctx,
		models.Game{Title: "Halo", Price: 100, GenreID: genre.ID, IsSelling: true},
		&models.Upload{Filename: "halo.png", Data: strings.NewReader("cover")},
		&models.Upload{Filename: "halo-wide.png", Data: strings.NewReader("wide")},
	)
	require.NoError(t, err)
	assert.Equal(t, "img/covers/halo.png", halo.Img)
	assert.Equal(t, "img/wide/halo-wide.png", halo.ImgWide)

	data, err := os.ReadFile(filepath.Join(assets, "img", "covers", "halo.png"))
	require.NoError(t, err)
	assert.Equal(t, "cover", string(data))

	_, err = s.GameStorage.CreateGame(ctx,
		models.Game{Title: "100% Orange", Price: 250, GenreID: genre.ID, IsSelling: true}, nil, nil)
	require.NoError(t, err)

	// wildcard characters in the search are literal
	found, err := s.GameStorage.ListGames(ctx, GameFilter{TitleLike: "%"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "100% Orange", found[0].Title)

	listed, err := s.GameStorage.ListGames(ctx, GameFilter{OnlySelling: true, WithCover: true})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Halo", listed[0].Title)

	require.NoError(t, s.GameStorage.SetSelling(ctx, halo.ID, false))
	got, err := s.GameStorage.GetGame(ctx, halo.ID)
	require.NoError(t, err)
	assert.False(t, got.IsSelling)

	listed, err = s.GameStorage.ListGames(ctx, GameFilter{OnlySelling: true, IDs: []int64{halo.ID}})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestSQLite_CreateGameAssetConflict(t *testing.T) {
	s, assets := newSQLiteStorages(t)
	ctx := context.Background()

	genre, err := s.GenreRepository.CreateGenre(ctx, "RPG")
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(assets, "img", "wide"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "img", "wide", "taken.png"), []byte("old"), 0o644))

	_, err = s.GameStorage.CreateGame(ctx,
		models.Game{Title: "Zelda", GenreID: genre.ID, IsSelling: true},
		&models.Upload{Filename: "zelda.png", Data: strings.NewReader("cover")},
		&models.Upload{Filename: "taken.png", Data: strings.NewReader("new")},
	)
	require.ErrorIs(t, err, ErrAssetAlreadyExists)
	assert.EqualError(t, err, "wide image already exists")

	// nothing was written or inserted
	_, statErr := os.Stat(filepath.Join(assets, "img", "covers", "zelda.png"))
	assert.True(t, os.IsNotExist(statErr))
	games, err := s.GameStorage.ListGames(ctx, GameFilter{})
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestSQLite_Comments(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	user, err := s.UserRepository.CreateUser(ctx, models.User{Nick: "neo", Email: "neo@matrix.io", PasswordHash: "h"})
	require.NoError(t, err)
	genre, err := s.GenreRepository.CreateGenre(ctx, "Puzzle")
	require.NoError(t, err)
	game, err := s.GameStorage.CreateGame(ctx, models.Game{Title: "Tetris", GenreID: genre.ID, IsSelling: true}, nil, nil)
	require.NoError(t, err)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	_, err = s.CommentRepository.CreateComment(ctx, models.Comment{Body: "second", UserID: user.UserID, GameID: game.ID, CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	_, err = s.CommentRepository.CreateComment(ctx, models.Comment{Body: "first", UserID: user.UserID, GameID: game.ID, CreatedAt: base})
	require.NoError(t, err)

	comments, err := s.CommentRepository.ListComments(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Body)
	assert.Equal(t, "second", comments[1].Body)
	assert.Equal(t, "neo", comments[0].AuthorNick)
	assert.Equal(t, "neo@matrix.io", comments[0].AuthorEmail)
}
