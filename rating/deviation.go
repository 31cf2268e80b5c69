// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import "math"

// Deviation is the weighted squared-error objective: the sum, over every
// non-flagged player, of the squared gap between expected and observed
// score, normalized by games played. Lower is better.
func Deviation(flagged []bool, expected, obtained []float64, playedBy []int) float64 {
	var accum float64
	for j := range flagged {
		if flagged[j] {
			continue
		}
		diff := expected[j] - obtained[j]
		accum += diff * diff / float64(playedBy[j])
	}
	return accum
}

// DeviationWithPriors is Deviation plus the additive penalty of an optional
// PriorSet. A nil priors contributes nothing, so this is always safe to
// call in place of Deviation.
func DeviationWithPriors(flagged []bool, expected, obtained []float64, playedBy []int, ratingOf []float64, priors *PriorSet) float64 {
	return Deviation(flagged, expected, obtained, playedBy) + priors.Penalty(ratingOf)
}

// NormalizedDeviation rescales a raw Deviation value into a human-readable,
// per-mille RMS figure used for progress reporting and threshold tests.
func NormalizedDeviation(curdev float64, nGames int) float64 {
	return 1000 * math.Sqrt(curdev/float64(nGames))
}

// deviationsClose reports whether two Deviation values are equal up to
// floating-point noise, used in place of an exact-equality assertion after
// a rollback (spec's suggested robustness fix for the original's
// `assert(curdev == olddev)`).
func deviationsClose(a, b float64) bool {
	scale := math.Max(1, math.Abs(b))
	return math.Abs(a-b) <= 1e-9*scale
}
