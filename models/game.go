// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Game is a catalog entry. Games are never deleted: IsSelling is flipped
// off to unlist them.
type Game struct {
	ID          int64   `json:"id"`
	Title       string  `json:"name"`
	Price       int64   `json:"price"`
	Description string  `json:"description"`
	Developers  string  `json:"developers"`
	ReleaseDate string  `json:"release_date"`
	Rating      float64 `json:"ratio"`
	GenreID     int64   `json:"genre"`

	// Img is the cover image path relative to the assets root
	// (e.g. "img/covers/halo.png"). Empty when the game has no cover.
	Img string `json:"img"`

	// ImgWide is the wide banner image path. Empty when absent.
	ImgWide string `json:"img_wide"`

	IsSelling bool `json:"is_selling"`
}

// TableName returns the name of the database table
// associated with the Game model.
func (g Game) TableName() string {
	return "games"
}

// HasCover reports whether the game has a cover image.
func (g Game) HasCover() bool {
	return g.Img != ""
}

// HasWide reports whether the game has a wide banner image.
func (g Game) HasWide() bool {
	return g.ImgWide != ""
}

// Genre is a catalog category referenced by games.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"genre"`
}

// TableName returns the name of the database table
// associated with the Genre model.
func (g Genre) TableName() string {
	return "genres"
}
