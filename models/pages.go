// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HomePage holds the randomly picked games shown on the landing page.
type HomePage struct {
	// Spotlight games have a wide image and rotate in the banner.
	Spotlight []Game
	// Featured games have a cover image.
	Featured []Game
}

// GamePage is everything the product page shows about one game.
type GamePage struct {
	Game     Game
	Genre    Genre
	Comments []Comment
	InCart   bool
}

// CartSummary is the priced content of a cart. Lines keep cart order and
// include one entry per cart line that resolves to a selling game.
type CartSummary struct {
	Lines []Game
	Total int64
}
