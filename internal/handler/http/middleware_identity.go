// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/rs/zerolog"
)

// accessTokenCookie holds the signed access token.
const accessTokenCookie = "access_token"

// withIdentity resolves the access token cookie to a user and stores it in
// the request context. Invalid tokens leave the request anonymous; it
// never rejects a request by itself.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(accessTokenCookie)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.Identify(r.Context(), cookie.Value)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("resolving identity failed")
			h.renderError(w, r, err)
			return
		}

		ctx := r.Context()
		if user != nil {
			l := logger.FromContext(ctx).GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Int64("user_id", user.UserID)
			})
			ctx = l.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
