// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/game-store/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and turns access tokens
// back into users.
type AuthService interface {
	// Register creates the account described by form and signs it in.
	Register(ctx context.Context, form models.RegisterForm) (models.User, models.Token, error)

	// Login checks the credentials in form and issues a token. Unknown
	// emails and wrong passwords both yield ErrWrongCredentials.
	Login(ctx context.Context, form models.LoginForm) (models.User, models.Token, error)

	IssueToken(ctx context.Context, user models.User) (models.Token, error)

	// Identify resolves an access token to its user. Any invalid token
	// resolves to nil without an error; only storage failures are returned.
	Identify(ctx context.Context, tokenString string) (*models.User, error)

	SetAdmin(ctx context.Context, email string, isAdmin bool) error
}

// CatalogService serves the storefront pages and catalog management.
// Methods taking a user apply the access policy; nil means anonymous.
type CatalogService interface {
	Home(ctx context.Context) (models.HomePage, error)

	// List returns the selling games that have a cover, ordered by title.
	List(ctx context.Context) ([]models.Game, error)

	// Search returns games whose title contains query, closest match first.
	Search(ctx context.Context, user *models.User, query string) ([]models.Game, error)

	GamePage(ctx context.Context, user *models.User, id int64, cart CartReader) (models.GamePage, error)
	VisibleGame(ctx context.Context, user *models.User, id int64) (models.Game, error)

	Genres(ctx context.Context) ([]models.Genre, error)
	CreateGenre(ctx context.Context, name string) (models.Genre, error)

	CreateGame(ctx context.Context, user *models.User, form models.GameForm) (models.Game, error)
	Unlist(ctx context.Context, user *models.User, id int64) error
	Relist(ctx context.Context, user *models.User, id int64) error

	AddComment(ctx context.Context, user *models.User, gameID int64, form models.CommentForm) (models.Comment, error)
}

// CheckoutService prices carts and hands out redemption codes.
type CheckoutService interface {
	// Summary resolves the cart lines that point to existing games, listed
	// or not.
	Summary(ctx context.Context, cart []int64) (models.CartSummary, error)

	// Price sums the prices of the resolvable cart lines.
	Price(ctx context.Context, cart []int64) (int64, error)

	// Checkout is Summary guarded by the purchase policy.
	Checkout(ctx context.Context, user *models.User, cart []int64) (models.CartSummary, error)

	// Redeem mints one code per resolvable cart line and empties the cart.
	Redeem(ctx context.Context, user *models.User, cart CartStore) ([]models.Redemption, error)
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// CartReader answers whether a game is in the caller's cart.
type CartReader interface {
	Contains(id int64) bool
}

// CartStore is the part of a session cart that checkout needs.
type CartStore interface {
	Cart() []int64
	Clear()
}
