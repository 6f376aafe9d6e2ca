// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/models"
)

// CodeAlphabet is the character set of redemption codes.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the length of a redemption code.
const CodeLength = 7

type checkoutService struct {
	games  store.GameStorage
	random utils.Random
	logger *logger.Logger
}

// NewCheckoutService constructs a CheckoutService. random drives code
// generation.
func NewCheckoutService(games store.GameStorage, random utils.Random, logger *logger.Logger) CheckoutService {
	return &checkoutService{
		games:  games,
		random: random,
		logger: logger,
	}
}

// Summary returns one line per cart entry that points to an existing game,
// in cart order. Unlisted games stay purchasable once they are in a cart.
// Duplicate entries produce duplicate lines.
func (c *checkoutService) Summary(ctx context.Context, cart []int64) (models.CartSummary, error) {
	lines, err := c.resolve(ctx, cart)
	if err != nil {
		return models.CartSummary{}, err
	}

	var total int64
	for _, g := range lines {
		total += g.Price
	}
	return models.CartSummary{Lines: lines, Total: total}, nil
}

func (c *checkoutService) Price(ctx context.Context, cart []int64) (int64, error) {
	summary, err := c.Summary(ctx, cart)
	if err != nil {
		return 0, err
	}
	return summary.Total, nil
}

func (c *checkoutService) Checkout(ctx context.Context, user *models.User, cart []int64) (models.CartSummary, error) {
	if err := CanPurchase(user); err != nil {
		return models.CartSummary{}, err
	}
	return c.Summary(ctx, cart)
}

// Redeem mints a code for every resolvable cart line and then clears the
// cart. Codes are not stored anywhere.
func (c *checkoutService) Redeem(ctx context.Context, user *models.User, cart CartStore) ([]models.Redemption, error) {
	if err := CanPurchase(user); err != nil {
		return nil, err
	}

	lines, err := c.resolve(ctx, cart.Cart())
	if err != nil {
		return nil, err
	}

	redemptions := make([]models.Redemption, 0, len(lines))
	for _, g := range lines {
		redemptions = append(redemptions, models.Redemption{Game: g, Code: GenerateCode(c.random)})
	}
	cart.Clear()

	logger.FromContext(ctx).Info().
		Int64("user_id", user.UserID).
		Int("codes", len(redemptions)).
		Msg("cart redeemed")
	return redemptions, nil
}

func (c *checkoutService) resolve(ctx context.Context, cart []int64) ([]models.Game, error) {
	if len(cart) == 0 {
		return nil, nil
	}

	seen := make(map[int64]struct{}, len(cart))
	ids := make([]int64, 0, len(cart))
	for _, id := range cart {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	games, err := c.games.ListGames(ctx, store.GameFilter{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("loading cart games failed: %w", err)
	}

	byID := make(map[int64]models.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	lines := make([]models.Game, 0, len(cart))
	for _, id := range cart {
		if g, ok := byID[id]; ok {
			lines = append(lines, g)
		}
	}
	return lines, nil
}

// GenerateCode shuffles CodeAlphabet and returns its first CodeLength
// characters, so no character repeats within a code.
func GenerateCode(r utils.Random) string {
	alphabet := []byte(CodeAlphabet)
	r.Shuffle(len(alphabet), func(i, j int) { alphabet[i], alphabet[j] = alphabet[j], alphabet[i] })
	return string(alphabet[:CodeLength])
}
