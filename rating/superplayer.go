// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

const (
	superSeedPhases          = 20
	superSeedRoundsPerPhase  = 10000
	superSeedStartDelta      = 200.0
	superSeedStartKappa      = 0.05
	superSeedExitDeviation   = 1e-6
	superSeedOffset          = 0.25
	superRefineMaxIterations = 2000
	superRefineStartDelta    = 200.0
	superRefineExitUnfitness = 1e-10
)

// opponentWeight is one (adjusted opponent rating, games played) pair
// gathered for a super-player's estimator.
type opponentWeight struct {
	rating float64
	games  float64
}

// collectOpponents gathers every opponent a super-player j faced, rotating
// the white-advantage sign so the opponent rating is expressed from j's
// point of view regardless of which side of the board j sat on.
func collectOpponents(j int, enc []Encounter, ratingOf []float64, whiteAdvantage float64) ([]opponentWeight, error) {
	var opponents []opponentWeight
	for _, e := range enc {
		switch j {
		case e.White:
			opponents = append(opponents, opponentWeight{ratingOf[e.Black] - whiteAdvantage, float64(e.Played)})
		case e.Black:
			opponents = append(opponents, opponentWeight{ratingOf[e.White] + whiteAdvantage, float64(e.Played)})
		default:
			return nil, errSuperPlayerEncounterIndex
		}
	}
	return opponents, nil
}

// calcIndRating seeds a super-player's rating by minimizing
// (target - sum_i games_i*Expect(x, r_i, beta))^2 via the same
// saturating-step adaptive descent RatingUpdaterPass uses, run over 20
// phases of up to 10000 iterations each, halving delta and doubling kappa
// every phase, with an early exit once the squared deviation drops below
// 1e-6.
func calcIndRating(target float64, opponents []opponentWeight, beta float64) float64 {
	x := seedFromOpponents(opponents)
	delta := superSeedStartDelta
	kappa := superSeedStartKappa

	for phase := 0; phase < superSeedPhases; phase++ {
		done := false
		for i := 0; i < superSeedRoundsPerPhase; i++ {
			expectedScore := weightedExpectedScore(x, opponents, beta)
			diff := expectedScore - target
			dev := diff * diff
			if dev < superSeedExitDeviation {
				done = true
				break
			}
			d := math.Abs(diff)
			y := d / (kappa + d)
			if expectedScore > target {
				x -= delta * y
			} else {
				x += delta * y
			}
		}
		if done {
			break
		}
		delta /= 2
		kappa *= 2
	}
	return x
}

// weightedExpectedScore returns sum_i games_i * Expect(x, r_i, beta).
func weightedExpectedScore(x float64, opponents []opponentWeight, beta float64) float64 {
	var sum float64
	for _, o := range opponents {
		sum += o.games * Expect(x, o.rating, beta)
	}
	return sum
}

// seedFromOpponents returns the games-weighted average opponent rating, a
// reasonable starting point for calcIndRating's descent.
func seedFromOpponents(opponents []opponentWeight) float64 {
	var sumR, sumW float64
	for _, o := range opponents {
		sumR += o.rating * o.games
		sumW += o.games
	}
	if sumW == 0 {
		return 0
	}
	return sumR / sumW
}

// logLikelihood returns the log of Prod_i p_i(x)^games_i, where p_i is the
// win probability against opponent i if superWinner, else the loss
// probability.
func logLikelihood(x float64, opponents []opponentWeight, beta float64, superWinner bool) float64 {
	var sum float64
	for _, o := range opponents {
		pWin, _, pLoss := WDL(x-o.rating, beta)
		p := pWin
		if !superWinner {
			p = pLoss
		}
		sum += o.games * math.Log(p)
	}
	return sum
}

// calcIndRatingSuperplayer refines a super-player's seed rating by
// maximizing the likelihood of the observed all-win (or all-loss) run: a
// fixed-sign step descent that starts with delta=200, steps x by
// sign(D)*delta where D is +-0.5 minus the current likelihood, reverts and
// halves delta whenever a step raises unfitness (1 - likelihood), and exits
// once unfitness drops below 1e-10 or 2000 iterations elapse.
func calcIndRatingSuperplayer(seed float64, opponents []opponentWeight, beta float64, superWinner bool) float64 {
	unfitness := func(x float64) float64 {
		return 1 - math.Exp(logLikelihood(x, opponents, beta, superWinner))
	}

	x := seed
	delta := superRefineStartDelta
	cur := unfitness(x)

	for i := 0; i < superRefineMaxIterations && cur >= superRefineExitUnfitness; i++ {
		p := math.Exp(logLikelihood(x, opponents, beta, superWinner))
		var d float64
		if superWinner {
			d = 0.5 - p
		} else {
			d = p - 0.5
		}
		sign := 1.0
		if d < 0 {
			sign = -1.0
		}
		trial := x + sign*delta
		tu := unfitness(trial)
		if tu < cur {
			x = trial
			cur = tu
		} else {
			delta /= 2
		}
	}
	return x
}

// SuperPlayerRater rates every SuperWinner/SuperLoser player via the
// dedicated estimator, since their observed score sits exactly on the
// boundary of the model and ordinary expected-score matching cannot locate
// a finite optimum for them. Rated players are un-flagged on exit.
func SuperPlayerRater(enc []Encounter, players *Players, whiteAdvantage, beta float64, logger *Logger) error {
	for j := range players.RatingOf {
		perf := players.Performance[j]
		if perf != SuperWinner && perf != SuperLoser {
			continue
		}
		var own []Encounter
		for _, e := range enc {
			if e.White == j || e.Black == j {
				own = append(own, e)
			}
		}
		opponents, err := collectOpponents(j, own, players.RatingOf, whiteAdvantage)
		if err != nil {
			return err
		}
		if len(opponents) == 0 {
			continue
		}

		cumeScore := players.Obtained[j]
		var target float64
		if perf == SuperWinner {
			target = cumeScore - superSeedOffset
		} else {
			target = cumeScore + superSeedOffset
		}

		seed := calcIndRating(target, opponents, beta)
		refined := calcIndRatingSuperplayer(seed, opponents, beta, perf == SuperWinner)

		if math.IsNaN(refined) {
			chk.Panic("super-player rating for player %d resolved to NaN", j)
		}

		players.RatingOf[j] = refined
		players.Flagged[j] = false

		if logger != nil {
			name := ""
			if j < len(players.Name) {
				name = players.Name[j]
			}
			logger.superPlayer(name, j, perf, refined)
		}
	}
	return nil
}
