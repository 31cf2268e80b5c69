// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import "math"

const (
	drawRateStartDelta    = 0.5
	drawRateTerminalDelta = 1e-4
	drawRateStartingPoint = 0.5
)

// drawRateFperf estimates the expected fraction of games that end in a draw
// given the logistic win expectation f and a trial equal-strength draw rate
// dr0. It reconstructs the commented-out dc/DRAWFACTOR branch of the
// original's fget_pWDL, generalizing the compile-time
// DRAWRATE_AT_EQUAL_STRENGTH constant into the dr0 parameter DrawRateFitter
// needs to search over.
func drawRateFperf(f, dr0 float64) float64 {
	if dr0 <= 0 {
		return 0
	}
	drawFactor := 1/(2*dr0) - 0.5
	// exp(deltaR*beta) == f/(1-f) for the logistic f used throughout.
	ratio := f / (1 - f)
	dc := 0.5 / (0.5 + drawFactor*ratio)
	return 2 * f * dc
}

// drawRateError is the squared draw-count error for a trial draw rate dr,
// aggregated over every encounter.
func drawRateError(enc []Encounter, ratingOf []float64, beta, wadv, dr float64) float64 {
	var accum float64
	for _, e := range enc {
		f := Expect(ratingOf[e.White]+wadv, ratingOf[e.Black], beta)
		dExp := drawRateFperf(f, dr)
		played := float64(e.Played)
		accum += float64(e.D)*(1-dExp)*(1-dExp) + (played-float64(e.D))*dExp*dExp
	}
	return accum
}

// DrawRateFitter optimizes the equal-strength draw rate against the squared
// draw-count error, using the same coarse ternary as WhiteAdvantageFitter.
func DrawRateFitter(whiteAdvantage float64, enc []Encounter, ratingOf []float64, beta float64) float64 {
	delta := drawRateStartDelta
	dr := drawRateStartingPoint

	for {
		ei := drawRateError(enc, ratingOf, beta, whiteAdvantage, dr-delta)
		ej := drawRateError(enc, ratingOf, beta, whiteAdvantage, dr)
		ek := drawRateError(enc, ratingOf, beta, whiteAdvantage, dr+delta)

		switch {
		case ei >= ej && ej <= ek:
			delta /= 2
		case ej >= ei && ei <= ek:
			dr -= delta
		case ei >= ek && ek <= ej:
			dr += delta
		}

		if !(delta > drawRateTerminalDelta) {
			break
		}
	}
	return math.Max(0, math.Min(1, dr))
}
