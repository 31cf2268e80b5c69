// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import "github.com/cpmech/gosl/la"

// pairKey identifies an ordered (white, black) pairing for aggregation.
type pairKey struct{ white, black int }

// Aggregate folds a raw game list into encounters, one per ordered pair
// that appears at least once. In EncountersNoFlagged mode, any game
// touching a flagged player is dropped before folding.
func Aggregate(mode EncounterMode, games *Games, flagged []bool) []Encounter {
	index := make(map[pairKey]int)
	enc := make([]Encounter, 0, len(games.White))
	for i, w := range games.White {
		b := games.Black[i]
		if mode == EncountersNoFlagged && (flagged[w] || flagged[b]) {
			continue
		}
		key := pairKey{w, b}
		idx, ok := index[key]
		if !ok {
			idx = len(enc)
			index[key] = idx
			enc = append(enc, Encounter{White: w, Black: b})
		}
		e := &enc[idx]
		e.Played++
		switch games.Score[i] {
		case WhiteWin:
			e.W++
			e.WScore += 1.0
		case Draw:
			e.D++
			e.WScore += 0.5
		case BlackWin:
			e.L++
		}
	}
	return enc
}

// RecomputeObtainedPlayedBy zeroes and refolds Obtained and PlayedBy from
// the current encounter list. This is independent of the current ratings,
// so it only needs to run when the encounter list changes.
func RecomputeObtainedPlayedBy(enc []Encounter, obtained []float64, playedBy []int) {
	la.VecFill(obtained, 0)
	for i := range playedBy {
		playedBy[i] = 0
	}
	for _, e := range enc {
		obtained[e.White] += e.WScore
		obtained[e.Black] += float64(e.Played) - e.WScore
		playedBy[e.White] += e.Played
		playedBy[e.Black] += e.Played
	}
}

// ComputeExpected zeroes and refolds the per-player expected score from the
// encounter list at the current ratings, white advantage, and beta.
func ComputeExpected(enc []Encounter, ratingOf []float64, whiteAdvantage, beta float64, expected []float64) {
	la.VecFill(expected, 0)
	for _, e := range enc {
		f := Expect(ratingOf[e.White]+whiteAdvantage, ratingOf[e.Black], beta)
		expected[e.White] += f * float64(e.Played)
		expected[e.Black] += (1 - f) * float64(e.Played)
	}
}

// TotalGames sums Played over every encounter, e.g. for the normalized
// deviation report.
func TotalGames(enc []Encounter) int {
	played := make([]float64, len(enc))
	for i, e := range enc {
		played[i] = float64(e.Played)
	}
	return int(la.VecAccum(played))
}
