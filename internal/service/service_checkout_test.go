// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/mock"
	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCheckout(t *testing.T, random utils.Random) (service.CheckoutService, *mock.MockGameStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	games := mock.NewMockGameStorage(ctrl)
	return service.NewCheckoutService(games, random, logger.Nop()), games, ctrl
}

func TestCheckoutService_Price(t *testing.T) {
	svc, games, _ := newCheckout(t, noShuffle{})
	ctx := context.Background()

	games.EXPECT().
		ListGames(ctx, store.GameFilter{IDs: []int64{1, 2, 99}}).
		Return([]models.Game{{ID: 1, Price: 100, IsSelling: true}, {ID: 2, Price: 250, IsSelling: true}}, nil)

	total, err := svc.Price(ctx, []int64{1, 2, 99})
	require.NoError(t, err)
	assert.Equal(t, int64(350), total)
}

func TestCheckoutService_Summary_Duplicates(t *testing.T) {
	svc, games, _ := newCheckout(t, noShuffle{})
	ctx := context.Background()

	games.EXPECT().
		ListGames(ctx, store.GameFilter{IDs: []int64{2, 1}}).
		Return([]models.Game{{ID: 1, Price: 100}, {ID: 2, Price: 250}}, nil)

	summary, err := svc.Summary(ctx, []int64{2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(600), summary.Total)

	ids := make([]int64, len(summary.Lines))
	for i, g := range summary.Lines {
		ids[i] = g.ID
	}
	assert.Equal(t, []int64{2, 1, 2}, ids)
}

func TestCheckoutService_Summary_EmptyCart(t *testing.T) {
	svc, _, _ := newCheckout(t, noShuffle{})

	summary, err := svc.Summary(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
	assert.Zero(t, summary.Total)
}

func TestCheckoutService_Checkout_Anonymous(t *testing.T) {
	svc, _, _ := newCheckout(t, noShuffle{})

	_, err := svc.Checkout(context.Background(), nil, []int64{1})
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestCheckoutService_Redeem(t *testing.T) {
	svc, games, ctrl := newCheckout(t, utils.NewCryptoRandom())
	ctx := context.Background()
	cart := mock.NewMockCartStore(ctrl)

	gomock.InOrder(
		cart.EXPECT().Cart().Return([]int64{1, 2, 3}),
		games.EXPECT().ListGames(ctx, store.GameFilter{IDs: []int64{1, 2, 3}}).
			Return([]models.Game{{ID: 1}, {ID: 2}, {ID: 3}}, nil),
		cart.EXPECT().Clear(),
	)

	redemptions, err := svc.Redeem(ctx, customer, cart)
	require.NoError(t, err)
	require.Len(t, redemptions, 3)

	for i, r := range redemptions {
		assert.Equal(t, int64(i+1), r.Game.ID)
		assertCode(t, r.Code)
	}
}

func TestCheckoutService_UnlistedLineIsStillSold(t *testing.T) {
	svc, games, ctrl := newCheckout(t, noShuffle{})
	ctx := context.Background()
	cart := mock.NewMockCartStore(ctrl)
	lines := []models.Game{{ID: 1, Price: 100, IsSelling: false}, {ID: 2, Price: 250, IsSelling: true}}

	games.EXPECT().ListGames(ctx, store.GameFilter{IDs: []int64{1, 2}}).Return(lines, nil).Times(2)
	cart.EXPECT().Cart().Return([]int64{1, 2})
	cart.EXPECT().Clear()

	summary, err := svc.Checkout(ctx, customer, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(350), summary.Total)

	redemptions, err := svc.Redeem(ctx, customer, cart)
	require.NoError(t, err)
	require.Len(t, redemptions, 2)
	assert.Equal(t, int64(1), redemptions[0].Game.ID)
	assertCode(t, redemptions[0].Code)
}

func TestCheckoutService_Redeem_Anonymous(t *testing.T) {
	svc, _, ctrl := newCheckout(t, noShuffle{})
	cart := mock.NewMockCartStore(ctrl)

	_, err := svc.Redeem(context.Background(), nil, cart)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestGenerateCode(t *testing.T) {
	assert.Equal(t, "ABCDEFG", service.GenerateCode(noShuffle{}))

	random := utils.NewCryptoRandom()
	for range 50 {
		assertCode(t, service.GenerateCode(random))
	}
}

func assertCode(t *testing.T, code string) {
	t.Helper()
	require.Len(t, code, service.CodeLength)

	seen := map[rune]bool{}
	for _, r := range code {
		assert.True(t, strings.ContainsRune(service.CodeAlphabet, r), "unexpected %q in %s", r, code)
		assert.False(t, seen[r], "repeated %q in %s", r, code)
		seen[r] = true
	}
}
