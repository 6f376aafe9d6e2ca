// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/game-store/internal/utils"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

var (
	ErrMalformedCookie = errors.New("session cookie is malformed")
	ErrBadSignature    = errors.New("session cookie signature mismatch")
)

type payload struct {
	ID     string                     `json:"id"`
	Values map[string]json.RawMessage `json:"values"`
}

// Codec signs and verifies session cookie values with an HMAC key.
type Codec struct {
	key string
}

// NewCodec creates a Codec signing with key.
func NewCodec(key string) *Codec {
	return &Codec{key: key}
}

// Encode serializes and signs s.
func (c *Codec) Encode(s *Session) (string, error) {
	raw, err := json.Marshal(payload{ID: s.ID, Values: s.values})
	if err != nil {
		return "", fmt.Errorf("error encoding session: %w", err)
	}

	data := base64.RawURLEncoding.EncodeToString(raw)
	return data + "." + c.sign(data), nil
}

func (c *Codec) sign(data string) string {
	return utils.HashString(data, c.key)
}

// Decode verifies and deserializes a cookie value. The returned session is
// not modified.
func (c *Codec) Decode(value string) (*Session, error) {
	data, signature, ok := strings.Cut(value, ".")
	if !ok || data == "" {
		return nil, ErrMalformedCookie
	}
	if !utils.VerifyHashString(data, signature, c.key) {
		return nil, ErrBadSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCookie, err)
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCookie, err)
	}
	if p.ID == "" {
		return nil, ErrMalformedCookie
	}
	if p.Values == nil {
		p.Values = make(map[string]json.RawMessage)
	}

	return &Session{ID: p.ID, values: p.Values}, nil
}
