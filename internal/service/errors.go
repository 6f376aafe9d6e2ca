// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("incorrect username or password")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrAlreadyInState is returned when unlisting an unlisted game or
	// relisting a selling one.
	ErrAlreadyInState = errors.New("game is already in the requested state")
)

// Access policy outcomes. They stay distinct up to the HTTP layer.
var (
	// ErrUnauthorized means the operation needs a signed-in user.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden means the signed-in user lacks the admin role.
	ErrForbidden = errors.New("insufficient rights")

	// ErrNotFound means the resource is missing or hidden from the caller.
	ErrNotFound = errors.New("not found")
)
