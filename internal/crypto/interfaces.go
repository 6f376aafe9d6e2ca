// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential store: salted, adaptive password
// hashes attached to a user record.
package crypto

import "github.com/MKhiriev/game-store/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher sets and verifies the password hash stored on a user.
// The plaintext password is never stored or logged.
type PasswordHasher interface {
	// SetPassword replaces user.PasswordHash with a fresh salted hash of
	// plaintext.
	SetPassword(user *models.User, plaintext string) error

	// VerifyPassword reports whether plaintext matches user.PasswordHash.
	// A missing or unparsable hash yields false.
	VerifyPassword(user models.User, plaintext string) bool
}
