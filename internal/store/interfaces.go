// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"io"

	"github.com/MKhiriev/game-store/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists store accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and ModifiedAt set.
	// A taken email yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail yields [ErrNoUserWasFound] when nobody has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// SetAdmin grants or revokes catalog management rights.
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
}

// GameFilter narrows ListGames. Zero-valued fields do not filter.
type GameFilter struct {
	// OnlySelling drops unlisted games.
	OnlySelling bool

	// WithCover and WithWide keep only games that have the image.
	WithCover bool
	WithWide  bool

	// TitleLike keeps titles containing the string. LIKE wildcards in it
	// are matched literally.
	TitleLike string

	// IDs restricts the result to the given ids. A non-nil empty slice
	// matches nothing.
	IDs []int64
}

// GameRepository reads and writes the games table. Results are ordered by
// title.
type GameRepository interface {
	GetGame(ctx context.Context, id int64) (models.Game, error)
	ListGames(ctx context.Context, filter GameFilter) ([]models.Game, error)

	// SetSelling flips the listing flag. A missing id yields [ErrGameNotFound].
	SetSelling(ctx context.Context, id int64, selling bool) error

	// InsertGame inserts game within tx and returns the new id.
	InsertGame(ctx context.Context, tx *sql.Tx, game models.Game) (int64, error)
}

// GenreRepository reads and writes the genres table.
type GenreRepository interface {
	ListGenres(ctx context.Context) ([]models.Genre, error)
	GetGenre(ctx context.Context, id int64) (models.Genre, error)
	CreateGenre(ctx context.Context, name string) (models.Genre, error)
}

// CommentRepository reads and writes the comments table.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// ListComments returns the comments of a game oldest first, with the
	// author's nick and email joined in.
	ListComments(ctx context.Context, gameID int64) ([]models.Comment, error)
}

// AssetStorage stores uploaded images under the assets root.
type AssetStorage interface {
	// Path returns the relative path an upload named filename would get.
	Path(kind AssetKind, filename string) string

	// Exists reports whether a relative path is already taken.
	Exists(ctx context.Context, path string) (bool, error)

	// Write creates the file at a relative path. An existing file yields
	// an [AssetExistsError].
	Write(ctx context.Context, kind AssetKind, path string, data io.Reader) error

	// Remove deletes the file at a relative path. A missing file is not an
	// error.
	Remove(ctx context.Context, path string) error
}

// GameStorage is the catalog facade used by the services. It coordinates
// the games table with the image files.
type GameStorage interface {
	GetGame(ctx context.Context, id int64) (models.Game, error)
	ListGames(ctx context.Context, filter GameFilter) ([]models.Game, error)
	SetSelling(ctx context.Context, id int64, selling bool) error

	// CreateGame stores the game row and its images as one unit. wide may
	// be nil.
	CreateGame(ctx context.Context, game models.Game, cover, wide *models.Upload) (models.Game, error)
}
