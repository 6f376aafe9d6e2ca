// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"testing"

	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/models"
	"github.com/stretchr/testify/assert"
)

var (
	customer = &models.User{UserID: 1, Email: "bob@example.com"}
	admin    = &models.User{UserID: 2, Email: "root@example.com", IsAdmin: true}
)

func TestPolicy_Matrix(t *testing.T) {
	tests := []struct {
		name  string
		check func(*models.User) error
		anon  error
		user  error
		admin error
	}{
		{name: "mutate catalog", check: service.CanMutateCatalog, anon: service.ErrUnauthorized, user: service.ErrForbidden},
		{name: "purchase", check: service.CanPurchase, anon: service.ErrUnauthorized},
		{name: "comment", check: service.CanComment, anon: service.ErrUnauthorized},
		{name: "profile", check: service.CanViewProfile, anon: service.ErrUnauthorized},
		{
			name:  "view unlisted game",
			check: func(u *models.User) error { return service.CanViewGame(u, models.Game{ID: 1}) },
			anon:  service.ErrNotFound,
			user:  service.ErrNotFound,
		},
		{
			name:  "view selling game",
			check: func(u *models.User) error { return service.CanViewGame(u, models.Game{ID: 1, IsSelling: true}) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertOutcome(t, tt.anon, tt.check(nil))
			assertOutcome(t, tt.user, tt.check(customer))
			assertOutcome(t, tt.admin, tt.check(admin))
		})
	}
}

func assertOutcome(t *testing.T, want, got error) {
	t.Helper()
	if want == nil {
		assert.NoError(t, got)
		return
	}
	assert.ErrorIs(t, got, want)
}
