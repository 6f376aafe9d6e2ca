// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Comment is a user remark attached to a game. Comments are append-only.
type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	UserID    int64     `json:"user_id"`
	GameID    int64     `json:"game_id"`
	CreatedAt time.Time `json:"timestamp"`

	// AuthorNick and AuthorEmail are joined from the users table when
	// comments are listed for a product page.
	AuthorNick  string `json:"-"`
	AuthorEmail string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// AuthorAvatar returns the Gravatar URL of the comment author.
func (c Comment) AuthorAvatar(size int) string {
	return GravatarURL(c.AuthorEmail, size)
}
