// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"strconv"
	"strings"
)

// LoginForm is the login page submission. Email travels in the "username"
// form field.
type LoginForm struct {
	Email    string
	Password string

	// RememberMe is accepted but has no effect on the token lifetime.
	RememberMe bool
}

// RegisterForm is the registration page submission.
type RegisterForm struct {
	Nick          string
	Email         string
	Password      string
	PasswordAgain string
	RememberMe    bool
}

// CommentForm is the comment page submission.
type CommentForm struct {
	Body string
}

// Upload is a binary file received with a multipart form.
type Upload struct {
	Filename string
	Data     io.Reader
}

// GameForm is the raw "add game" submission. Numeric fields are kept as
// strings so the form can be re-rendered with the user's input after a
// failed validation.
type GameForm struct {
	Title       string
	Price       string
	Description string
	Developers  string
	ReleaseDate string
	Genre       string
	Rating      string

	Cover *Upload
	Wide  *Upload
}

// Game converts an already validated form into a catalog entry. Image
// paths are filled in by the asset store.
func (f GameForm) Game() Game {
	price, _ := strconv.ParseInt(strings.TrimSpace(f.Price), 10, 64)
	genre, _ := strconv.ParseInt(strings.TrimSpace(f.Genre), 10, 64)
	rating, _ := strconv.ParseFloat(strings.TrimSpace(f.Rating), 64)

	return Game{
		Title:       strings.TrimSpace(f.Title),
		Price:       price,
		Description: f.Description,
		Developers:  strings.TrimSpace(f.Developers),
		ReleaseDate: strings.TrimSpace(f.ReleaseDate),
		Rating:      rating,
		GenreID:     genre,
		IsSelling:   true,
	}
}
