// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import "math"

// RatingUpdaterPass runs one coordinate-descent step across every
// non-flagged, non-anchored player, then re-centers the ratings either
// around the single anchor or around the non-flagged, non-anchored mean.
// It returns the pass's resolution: the maximum per-player step actually
// taken, a proxy for closeness to a local optimum.
func RatingUpdaterPass(
	delta, kappa float64,
	players *Players,
	expected []float64,
	generalAverage float64,
	multipleAnchorsPresent, anchorUse bool,
	anchor int,
) float64 {
	var ymax float64
	for j := range players.RatingOf {
		if players.Flagged[j] || players.Prefed[j] {
			continue
		}
		d := (expected[j] - players.Obtained[j]) / float64(players.PlayedBy[j])
		d = math.Abs(d)
		y := d / (kappa + d)
		if y > ymax {
			ymax = y
		}
		if expected[j] > players.Obtained[j] {
			players.RatingOf[j] -= delta * y
		} else {
			players.RatingOf[j] += delta * y
		}
	}

	recenter(players, generalAverage, multipleAnchorsPresent, anchorUse, anchor)

	return ymax * delta
}

// recenter normalizes RatingOf back to generalAverage, either by subtracting
// the anchor's excess over generalAverage from every non-anchored rating, or
// by subtracting the non-flagged/non-anchored mean's excess. It is a no-op
// when multiple anchors are present.
func recenter(players *Players, generalAverage float64, multipleAnchorsPresent, anchorUse bool, anchor int) {
	if multipleAnchorsPresent {
		return
	}
	var excess float64
	if anchorUse {
		excess = players.RatingOf[anchor] - generalAverage
	} else {
		var notFlagged int
		var accum float64
		for j := range players.RatingOf {
			if !players.Flagged[j] && !players.Prefed[j] {
				notFlagged++
				accum += players.RatingOf[j]
			}
		}
		excess = accum/float64(notFlagged) - generalAverage
	}
	for j := range players.RatingOf {
		if !players.Flagged[j] && !players.Prefed[j] {
			players.RatingOf[j] -= excess
		}
	}
}

// RecenterByAnchor applies the single-anchor re-centering directly, with no
// minimization involved. Used by the Conductor at the end of every outer
// pass when a single anchor is in play.
func RecenterByAnchor(players *Players, generalAverage float64, anchorUse bool, anchor int) {
	if !anchorUse {
		return
	}
	excess := players.RatingOf[anchor] - generalAverage
	for j := range players.RatingOf {
		if !players.Flagged[j] && !players.Prefed[j] {
			players.RatingOf[j] -= excess
		}
	}
}
