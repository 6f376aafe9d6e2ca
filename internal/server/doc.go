// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the store's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
