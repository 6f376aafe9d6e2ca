// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/session"
)

// withSession loads the cart session and writes it back as a cookie right
// before the status line goes out.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := h.sessions.Load(r)

		sw := &sessionWriter{ResponseWriter: w}
		sw.save = func() {
			if err := h.sessions.Save(w, s); err != nil {
				logger.FromRequest(r).Err(err).Msg("saving session failed")
			}
		}

		next.ServeHTTP(sw, r.WithContext(session.WithSession(r.Context(), s)))
		sw.flush()
	})
}

type sessionWriter struct {
	http.ResponseWriter

	save  func()
	saved bool
}

func (w *sessionWriter) flush() {
	if !w.saved {
		w.saved = true
		w.save()
	}
}

func (w *sessionWriter) WriteHeader(statusCode int) {
	w.flush()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
