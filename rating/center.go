// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import "github.com/cpmech/gosl/utl"

// centerBracket is the half-width of the scalar offset search CenterAdjuster
// runs; the offset is unlikely to ever approach it, but it bounds the
// search the way the original's hard-coded +-100 bracket does.
const centerBracket = 100.0

// CenterAdjuster searches for the scalar offset that, added to every
// non-flagged, non-anchored rating, most reduces Deviation. It compensates
// for the mean drift a RatingUpdaterPass introduces before the hard
// re-centering step. ratingTmp is scratch owned by the caller.
func CenterAdjuster(
	minResol float64,
	enc []Encounter,
	players *Players,
	whiteAdvantage, beta float64,
	expected []float64,
	ratingTmp []float64,
	priors *PriorSet,
) float64 {
	objective := func(offset float64) float64 {
		copy(ratingTmp, players.RatingOf)
		for j := range ratingTmp {
			if !players.Flagged[j] && !players.Prefed[j] {
				ratingTmp[j] += offset
			}
		}
		ComputeExpected(enc, ratingTmp, whiteAdvantage, beta, expected)
		return DeviationWithPriors(players.Flagged, expected, players.Obtained, players.PlayedBy, ratingTmp, priors)
	}

	c := QuadFit1D(minResol, -centerBracket, centerBracket, objective)
	// Defensive clamp: the bracket search should never leave its own
	// bracket, but a pathological objective must not be allowed to hand
	// back an offset the caller applies unbounded.
	return utl.Max(-centerBracket, utl.Min(centerBracket, c))
}

// ApplyCenterOffset adds offset to every non-flagged, non-anchored rating.
func ApplyCenterOffset(players *Players, offset float64) {
	for j := range players.RatingOf {
		if !players.Flagged[j] && !players.Prefed[j] {
			players.RatingOf[j] += offset
		}
	}
}
