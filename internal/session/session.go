// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
)

// Session is the decoded state of one browser session. Values are kept as
// raw JSON so that a slot written by an older build can be detected as
// malformed instead of failing the whole cookie.
type Session struct {
	ID       string
	values   map[string]json.RawMessage
	modified bool
}

// New returns an empty session with the given id.
func New(id string) *Session {
	return &Session{
		ID:     id,
		values: make(map[string]json.RawMessage),
	}
}

// Modified reports whether the session changed since it was decoded.
func (s *Session) Modified() bool {
	return s.modified
}

func (s *Session) get(key string) (json.RawMessage, bool) {
	raw, ok := s.values[key]
	return raw, ok
}

func (s *Session) set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		// only called with slices of int64
		return
	}
	s.values[key] = raw
	s.modified = true
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by the session middleware.
// ok is false when no session is attached.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
