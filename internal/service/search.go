// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/game-store/models"
	"github.com/agnivade/levenshtein"
)

// RankByTitle keeps the games whose title contains query (case-sensitive)
// and orders them by edit distance between query and title. Games at the
// same distance keep their input order.
func RankByTitle(query string, games []models.Game) []models.Game {
	type ranked struct {
		game     models.Game
		distance int
	}

	matches := make([]ranked, 0, len(games))
	for _, g := range games {
		if strings.Contains(g.Title, query) {
			matches = append(matches, ranked{game: g, distance: levenshtein.ComputeDistance(query, g.Title)})
		}
	}

	slices.SortStableFunc(matches, func(a, b ranked) int {
		return cmp.Compare(a.distance, b.distance)
	})

	result := make([]models.Game, len(matches))
	for i, m := range matches {
		result[i] = m.game
	}
	return result
}
