// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the client-held, server-signed browser session
// and the shopping cart stored in it.
//
// A session is serialized into the "session" cookie as
//
//	base64url(json{id, values}) "." hex(HMAC-SHA256(payload, key))
//
// Cookies with a bad signature or an undecodable payload are discarded and a
// fresh session is started. The cart is independent of the logged-in user.
package session
