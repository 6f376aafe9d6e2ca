// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"math/big"
)

// Random is the randomness source used for redemption codes and the
// home page selection.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// CryptoRandom implements Random using crypto/rand.
type CryptoRandom struct{}

// NewCryptoRandom creates a new CryptoRandom.
func NewCryptoRandom() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n).
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		return 0
	}
	return int(result.Int64())
}

// Shuffle is a Fisher-Yates shuffle driven by Intn.
func (r *CryptoRandom) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}

// Sample returns up to k elements of items in random order. items is not
// modified.
func Sample[T any](r Random, items []T, k int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if k < len(pool) {
		pool = pool[:k]
	}
	return pool
}
