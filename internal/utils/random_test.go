// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandom_Intn(t *testing.T) {
	r := NewCryptoRandom()
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
	for range 100 {
		v := r.Intn(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
}

// TestCryptoRandom_ShuffleIsPermutation verifies that shuffling keeps every
// element exactly once.
func TestCryptoRandom_ShuffleIsPermutation(t *testing.T) {
	r := NewCryptoRandom()
	items := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	shuffled := slices.Clone(items)

	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	slices.Sort(shuffled)
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	assert.Equal(t, sorted, shuffled)
}

func TestSample(t *testing.T) {
	r := NewCryptoRandom()
	items := []int{1, 2, 3, 4, 5}

	got := Sample(r, items, 3)
	assert.Len(t, got, 3)
	for _, v := range got {
		assert.Contains(t, items, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)

	assert.Len(t, Sample(r, items, 10), 5)
	assert.Empty(t, Sample(r, []int{}, 3))
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFixedClock(start)
	assert.Equal(t, start, c.Now())

	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())

	assert.WithinDuration(t, time.Now(), NewRealClock().Now(), time.Second)
}
