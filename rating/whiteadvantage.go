// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import "github.com/cpmech/gosl/utl"

// whiteAdvantageTerminalDelta and whiteAdvantageLimit are the bit-for-bit
// numerical constants the fitter must match.
const (
	whiteAdvantageTerminalDelta = 0.01
	whiteAdvantageLimit         = 1000
)

// whiteAdvantageError is the squared expected-vs-observed WDL error for a
// trial white advantage w, aggregated over every encounter.
func whiteAdvantageError(enc []Encounter, ratingOf []float64, beta, w float64) float64 {
	var accum float64
	for _, e := range enc {
		f := Expect(ratingOf[e.White]+w, ratingOf[e.Black], beta)
		accum += float64(e.W)*(1-f)*(1-f) +
			float64(e.D)*(0.5-f)*(0.5-f) +
			float64(e.L)*(0-f)*(0-f)
	}
	return accum
}

// WhiteAdvantageFitter optimizes the first-mover bonus against the squared
// expected-vs-observed WDL error, using the same coarse ternary Stage A of
// LineMinimizer1D drives: halve the step when bracketed, else step downhill.
func WhiteAdvantageFitter(startWadv float64, enc []Encounter, ratingOf []float64, beta, startDelta float64) float64 {
	delta := startDelta
	w := startWadv

	for {
		ei := whiteAdvantageError(enc, ratingOf, beta, w-delta)
		ej := whiteAdvantageError(enc, ratingOf, beta, w)
		ek := whiteAdvantageError(enc, ratingOf, beta, w+delta)

		switch {
		case ei >= ej && ej <= ek:
			delta /= 2
		case ej >= ei && ei <= ek:
			w -= delta
		case ei >= ek && ek <= ej:
			w += delta
		}

		if !(delta > whiteAdvantageTerminalDelta && utl.Max(w, -w) < whiteAdvantageLimit) {
			break
		}
	}
	return w
}
