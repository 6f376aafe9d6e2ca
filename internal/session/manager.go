// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"net/http"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/utils"
)

// Manager loads sessions from requests and writes them back as cookies.
type Manager struct {
	codec *Codec
	ids   utils.IDGenerator
}

// NewManager creates a Manager signing cookies with key and naming new
// sessions with ids.
func NewManager(key string, ids utils.IDGenerator) *Manager {
	return &Manager{codec: NewCodec(key), ids: ids}
}

// Load returns the session carried by r, or a fresh one when the cookie is
// absent or fails verification.
func (m *Manager) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return New(m.ids.Generate())
	}

	s, err := m.codec.Decode(cookie.Value)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("discarding session cookie")
		return New(m.ids.Generate())
	}
	return s
}

// Save writes the session cookie when s was modified.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	if !s.Modified() {
		return nil
	}

	value, err := m.codec.Encode(s)
	if err != nil {
		return err
	}

	utils.SetCookie(w, CookieName, value, 0)
	s.modified = false
	return nil
}
