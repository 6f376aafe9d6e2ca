// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "a@b.c", jwtNow, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "a@b.c", token.Subject)
	assert.True(t, token.ExpiresAt.Equal(jwtNow.Add(time.Hour)))

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	require.NoError(t, err)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "a@b.c", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty subject", "", time.Hour, "key"},
		{"zero duration", "a@b.c", 0, "key"},
		{"negative duration", "a@b.c", -time.Minute, "key"},
		{"empty key", "a@b.c", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken("iss", tt.subject, jwtNow, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issued, err := GenerateJWTToken("iss", "a@b.c", jwtNow, time.Hour, "key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "key", "iss", fixedNow(jwtNow))
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", parsed.Subject)
}

// TestValidateAndParseJWTToken_NoIssuerConfigured verifies that the issuer
// is neither required nor checked when none is configured.
func TestValidateAndParseJWTToken_NoIssuerConfigured(t *testing.T) {
	issued, err := GenerateJWTToken("", "a@b.c", jwtNow, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "key", "", fixedNow(jwtNow))
	assert.NoError(t, err)
}

func TestValidateAndParseJWTToken_Expiry(t *testing.T) {
	issued, err := GenerateJWTToken("iss", "a@b.c", jwtNow, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "key", "iss", fixedNow(jwtNow.Add(time.Hour-time.Second)))
	assert.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "key", "iss", fixedNow(jwtNow.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	issued, err := GenerateJWTToken("iss", "a@b.c", jwtNow, time.Hour, "key")
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(jwtNow.Add(time.Hour)),
	})
	noSubjectString, err := noSubject.SignedString([]byte("key"))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{Subject: "a@b.c"})
	noExpiryString, err := noExpiry.SignedString([]byte("key"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		key     string
		issuer  string
		wantErr error
	}{
		{name: "missing", token: "", key: "key", issuer: "iss", wantErr: ErrTokenMissing},
		{name: "malformed", token: "not.a.jwt", key: "key", issuer: "iss", wantErr: ErrTokenMalformed},
		{name: "bad signature", token: issued.SignedString, key: "other", issuer: "iss", wantErr: ErrTokenSignature},
		{name: "wrong issuer", token: issued.SignedString, key: "key", issuer: "someone-else", wantErr: ErrTokenInvalid},
		{name: "no subject", token: noSubjectString, key: "key", issuer: "iss", wantErr: ErrTokenNoSubject},
		{name: "no expiry", token: noExpiryString, key: "key", issuer: "", wantErr: ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, fixedNow(jwtNow))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
