// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registering an email that is
	// already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrGameNotFound is returned when no game matches the given id.
	ErrGameNotFound = errors.New("game was not found")

	// ErrGenreNotFound is returned when no genre matches the given id.
	ErrGenreNotFound = errors.New("genre was not found")

	// ErrGenreAlreadyExists is returned when a genre name is taken.
	ErrGenreAlreadyExists = errors.New("genre already exists")

	// ErrIntegrity marks a multi-step write (database row plus image files)
	// that could not be fully undone. The message names what was left behind.
	ErrIntegrity = errors.New("storage left in inconsistent state")

	// ErrUnsupportedDSN is returned for a DSN whose scheme maps to no driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// AssetKind names one of the image directories under the assets root.
type AssetKind string

const (
	AssetCover AssetKind = "cover"
	AssetWide  AssetKind = "wide image"
)

// AssetExistsError reports that an upload would overwrite an existing image.
// It matches [ErrAssetAlreadyExists] with errors.Is.
type AssetExistsError struct {
	Kind AssetKind
	Path string
}

// ErrAssetAlreadyExists is the sentinel matched by every [AssetExistsError].
var ErrAssetAlreadyExists = errors.New("asset already exists")

func (e *AssetExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Kind)
}

func (e *AssetExistsError) Is(target error) bool {
	return target == ErrAssetAlreadyExists
}
