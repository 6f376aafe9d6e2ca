// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// User represents a store account. Email is the login name and must be
// unique across all users.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Nick is the display name shown next to comments.
	Nick string `json:"nick"`

	// Email is the login name. Also used as the subject of issued tokens.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// IsAdmin grants catalog management rights.
	IsAdmin bool `json:"is_admin"`

	// ModifiedAt is the timestamp of the last change to the account.
	ModifiedAt time.Time `json:"modified_date"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Avatar returns the Gravatar identicon URL for the user's email.
func (u User) Avatar(size int) string {
	return GravatarURL(u.Email, size)
}

// GravatarURL builds an identicon URL for an email address.
func GravatarURL(email string, size int) string {
	digest := md5.Sum([]byte(strings.ToLower(email)))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=%d", hex.EncodeToString(digest[:]), size)
}
