// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import "math"

// Expect returns the logistic expected score of a player rated ra against
// an opponent rated rb, at scale beta. This is the only performance model
// the optimizer sees; any alternative must reproduce this identity.
func Expect(ra, rb, beta float64) float64 {
	return 1.0 / (1.0 + math.Exp((rb-ra)*beta))
}

// WDL decomposes a rating difference deltaR = ra - rb into a (win, draw,
// loss) probability triple via the squared-form decomposition: pwin = f*f,
// ploss = (1-f)*(1-f), pdraw = 1 - pwin - ploss, where f = Expect(deltaR, 0,
// beta). The win/loss roles are swapped when deltaR < 0 so the triple
// always reads from the perspective of the player whose rating is "ra".
func WDL(deltaR, beta float64) (pWin, pDraw, pLoss float64) {
	dr := deltaR
	switched := dr < 0
	if switched {
		dr = -dr
	}
	f := Expect(dr, 0, beta)
	pw := f * f
	pl := (1 - f) * (1 - f)
	pd := 1 - pw - pl
	if switched {
		return pl, pd, pw
	}
	return pw, pd, pl
}
