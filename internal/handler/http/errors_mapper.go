// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidID: http.StatusNotFound,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	service.ErrUnauthorized:        http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrAlreadyInState:      http.StatusConflict,
	validators.ErrValidation:       http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrGameNotFound:       http.StatusNotFound,
	store.ErrGenreNotFound:      http.StatusNotFound,
	store.ErrGenreAlreadyExists: http.StatusConflict,
	store.ErrAssetAlreadyExists: http.StatusConflict,
	store.ErrInvalidAssetName:   http.StatusBadRequest,
	store.ErrIntegrity:          http.StatusInternalServerError,
	store.ErrUnsupportedDSN:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusFromError maps err to a status through the sentinel it wraps, 500
// when none matches.
// An integrity failure always wins, whatever else it wraps.
func statusFromError(err error) int {
	if errors.Is(err, store.ErrIntegrity) {
		return http.StatusInternalServerError
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
