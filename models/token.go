// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an issued or validated access token.
//
// SignedString holds the compact JWS form stored in the access token cookie.
// Subject is the user email carried in the "sub" claim.
type Token struct {
	SignedString string    `json:"-"`
	Subject      string    `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
