// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the game store
// layers: access token signing and validation, HMAC signatures, the
// request identity carried in context.Context, JSON and redirect responses,
// id generation, and the injectable clock and random sources.
package utils
