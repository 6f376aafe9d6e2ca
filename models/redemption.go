// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Redemption pairs a purchased game with its generated claim code.
// Redemptions only live in the checkout response and are never stored.
type Redemption struct {
	Game Game
	Code string
}
