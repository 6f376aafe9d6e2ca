// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the storefront's HTTP transport.
//
// It wires the chi router, the page handlers and the middleware chain:
// trace ids, access logging, response compression, the cart session and
// identity resolution from the access token cookie. Service errors are
// mapped to status codes in one place and rendered as error pages.
package http
