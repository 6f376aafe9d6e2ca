// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidID is returned for a path id that is not an integer.
	ErrInvalidID = errors.New("invalid id in path")

	// ErrNoSession means the session middleware did not run for a route
	// that needs the cart.
	ErrNoSession = errors.New("no session in request context")
)

// msgWrongCredentials is shown on the login page after a failed attempt.
const msgWrongCredentials = "Incorrect username or password"
