// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Conductor sequences RatingUpdaterPass and CenterAdjuster until a
// resolution/deviation threshold, then adjusts the white advantage and
// draw rate, then re-runs the super-player estimator, looping until the
// white advantage stops moving.
type Conductor struct {
	Config *FitConfig
	Logger *Logger
}

// NewConductor creates a Conductor for the given configuration, with a
// Logger whose verbosity follows Config.Verbose.
func NewConductor(cfg *FitConfig) *Conductor {
	return &Conductor{Config: cfg, Logger: NewLogger(cfg.Verbose)}
}

// Fit runs the full convergence choreography and returns the number of
// encounters in play at termination along with the fitted white advantage
// and draw rate. scratch must be sized to players.Len() and is owned
// exclusively by this call for its duration. enc is the caller's initial
// aggregation (typically EncountersNoFlagged); games supplies the raw
// records the Conductor re-aggregates from around the super-player pass.
func (ct *Conductor) Fit(scratch *Scratch, enc []Encounter, players *Players, games *Games, priors *PriorSet) (FitResult, error) {
	cfg := ct.Config
	n := players.Len()
	if len(scratch.Expected) != n || len(scratch.RatingBk) != n || len(scratch.RatingTmp) != n {
		chk.Panic("scratch buffers must be sized to the player table (n=%d)", n)
	}
	if games == nil {
		chk.Panic("Fit requires the raw game records to re-aggregate encounters around the super-player pass")
	}

	whiteAdv := cfg.WhiteAdvantage
	drawRate := cfg.DrawRate
	waPrev := whiteAdv
	waProgress := waProgressStart

	timesOri := outerTimesDefault
	if !cfg.AdjustWhiteAdvantage {
		timesOri = 1
	}

	nEnc := len(enc)

	for outer := 0; outer < timesOri && waProgress > waProgressExit; outer++ {
		delta := initialDelta
		kappa := initialKappa
		minResol := MinResol
		switch outer {
		case 0:
			minResol = 10
		case 1:
			minResol = 0.1
		}

		RecomputeObtainedPlayedBy(enc, players.Obtained, players.PlayedBy)
		ComputeExpected(enc, players.RatingOf, whiteAdv, cfg.Beta, scratch.Expected)
		curdev := DeviationWithPriors(players.Flagged, scratch.Expected, players.Obtained, players.PlayedBy, players.RatingOf, priors)

		nGames := TotalGames(enc)
		if nGames == 0 {
			nGames = 1
		}

		ct.Logger.cycle(outer)

		var resol float64
		var lastIter int
		for phase := 0; phase < outerPhases; phase++ {
			kk := 1.0
			lastIter = 0
			failed := false

			for i := 0; i < outerRoundsPerIter; i++ {
				lastIter = i
				copy(scratch.RatingBk, players.RatingOf)
				olddev := curdev

				resol = RatingUpdaterPass(delta, kappa*kk, players, scratch.Expected, cfg.GeneralAverage, cfg.MultipleAnchorsPresent, cfg.AnchorUse, cfg.Anchor)

				ComputeExpected(enc, players.RatingOf, whiteAdv, cfg.Beta, scratch.Expected)
				curdev = DeviationWithPriors(players.Flagged, scratch.Expected, players.Obtained, players.PlayedBy, players.RatingOf, priors)

				if curdev >= olddev {
					copy(players.RatingOf, scratch.RatingBk)
					ComputeExpected(enc, players.RatingOf, whiteAdv, cfg.Beta, scratch.Expected)
					curdev = DeviationWithPriors(players.Flagged, scratch.Expected, players.Obtained, players.PlayedBy, players.RatingOf, priors)
					if !deviationsClose(curdev, olddev) {
						chk.Panic("rating-fit rollback did not reproduce the prior deviation: curdev=%.15g olddev=%.15g", curdev, olddev)
					}
					failed = true
				}

				centerDelta := CenterAdjuster(minResol, enc, players, whiteAdv, cfg.Beta, scratch.Expected, scratch.RatingTmp, priors)
				changed := math.Abs(centerDelta) > MinResol
				if changed {
					ApplyCenterOffset(players, centerDelta)
					failed = false
				}

				if failed {
					break
				}

				outputDev := NormalizedDeviation(curdev, nGames)
				if outputDev < MinDevia || (resol+centerDelta) < minResol {
					break
				}

				kk *= kkDecay
			}

			delta /= outerStepDenom
			kappa *= outerStepDenom

			outputDev := NormalizedDeviation(curdev, nGames)
			ct.Logger.phase(phase, lastIter, outputDev, resol)

			if outputDev < MinDevia || resol < minResol {
				break
			}
		}
		ct.Logger.done()

		if cfg.AdjustWhiteAdvantage {
			whiteAdv = WhiteAdvantageFitter(whiteAdv, enc, players.RatingOf, cfg.Beta, StartDelta)
			waProgress = math.Abs(waPrev - whiteAdv)
			waPrev = whiteAdv
			ct.Logger.whiteAdvantage(whiteAdv)
		}

		if cfg.AdjustDrawRate {
			drawRate = DrawRateFitter(whiteAdv, enc, players.RatingOf, cfg.Beta)
			ct.Logger.drawRate(drawRate)
		}

		fullEnc := Aggregate(EncountersFull, games, players.Flagged)
		RecomputeObtainedPlayedBy(fullEnc, players.Obtained, players.PlayedBy)
		if err := SuperPlayerRater(fullEnc, players, whiteAdv, cfg.Beta, ct.Logger); err != nil {
			return FitResult{}, err
		}

		enc = Aggregate(EncountersNoFlagged, games, players.Flagged)
		RecomputeObtainedPlayedBy(enc, players.Obtained, players.PlayedBy)
		nEnc = len(enc)

		if !cfg.MultipleAnchorsPresent {
			RecenterByAnchor(players, cfg.GeneralAverage, cfg.AnchorUse, cfg.Anchor)
		}
	}

	cfg.WhiteAdvantage = whiteAdv
	cfg.DrawRate = drawRate

	return FitResult{NEnc: nEnc, WhiteAdvantage: whiteAdv, DrawRate: drawRate}, nil
}
