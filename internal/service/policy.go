// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/game-store/models"

// The predicates below take the resolved identity of a request. A nil
// user is an anonymous caller.

// CanMutateCatalog allows creating, unlisting and relisting games.
func CanMutateCatalog(user *models.User) error {
	if user == nil {
		return ErrUnauthorized
	}
	if !user.IsAdmin {
		return ErrForbidden
	}
	return nil
}

// CanPurchase allows pricing and checking out the cart.
func CanPurchase(user *models.User) error {
	return requireIdentity(user)
}

// CanComment allows posting comments.
func CanComment(user *models.User) error {
	return requireIdentity(user)
}

// CanViewProfile allows reading the caller's own account.
func CanViewProfile(user *models.User) error {
	return requireIdentity(user)
}

// CanViewGame hides unlisted games from everyone but admins. Hidden games
// are reported as missing.
func CanViewGame(user *models.User, game models.Game) error {
	if game.IsSelling || canSeeUnlisted(user) {
		return nil
	}
	return ErrNotFound
}

func canSeeUnlisted(user *models.User) bool {
	return user != nil && user.IsAdmin
}

func requireIdentity(user *models.User) error {
	if user == nil {
		return ErrUnauthorized
	}
	return nil
}
