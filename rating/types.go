// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rating implements the rating-fit engine: a coordinate-descent
// optimizer that estimates player ratings, a first-mover advantage, and an
// equal-strength draw rate from aggregated head-to-head game outcomes under
// a logistic performance model.
package rating

// PerformanceType classifies a player for the purposes of the fit. Normal
// players are rated by matching expected to observed score; SuperWinner and
// SuperLoser players sit on the boundary of all-wins/all-losses and need the
// dedicated estimator in SuperPlayerRater.
type PerformanceType int

const (
	Normal PerformanceType = iota
	SuperWinner
	SuperLoser
)

// EncounterMode selects which games Aggregate folds into encounters.
type EncounterMode int

const (
	// EncountersFull includes every pairing, flagged or not.
	EncountersFull EncounterMode = iota
	// EncountersNoFlagged drops any game touching a flagged player.
	EncountersNoFlagged
)

// GameResult is the outcome of a single game from White's perspective.
type GameResult int

const (
	WhiteWin GameResult = iota
	Draw
	BlackWin
)

// Games holds the raw, ungrouped game records a Conductor re-aggregates
// from whenever encounters need to be rebuilt (e.g. around the super-player
// pass). Parsing PGN into this shape is an external collaborator's job.
type Games struct {
	Score  []GameResult
	White  []int // player index of the first mover
	Black  []int // player index of the second mover
}

// Encounter is an aggregated row for one ordered (white, black) pair.
type Encounter struct {
	White, Black int
	Played       int     // total games in this pairing
	WScore       float64 // total score accumulated by White
	W, D, L      int     // game counts; W+D+L == Played, W+D/2 == WScore
}

// Players holds the parallel dense per-player arrays the core reads and
// mutates. Arrays are sized N_players and indexed 0..N_players.
type Players struct {
	RatingOf    []float64         // current rating, in/out
	Obtained    []float64         // observed score summed over encounters
	PlayedBy    []int             // total games played
	Flagged     []bool            // excluded from the optimization
	Prefed      []bool            // rating held fixed (anchor)
	Performance []PerformanceType // classification, set by the caller
	Name        []string          // display only, used in super-player logging
}

// NewPlayers allocates a Players table for n players, all Normal, none
// flagged or anchored. The caller seeds RatingOf (typically with the
// general average) and sets Flagged/Prefed/Performance as needed.
func NewPlayers(n int) *Players {
	return &Players{
		RatingOf:    make([]float64, n),
		Obtained:    make([]float64, n),
		PlayedBy:    make([]int, n),
		Flagged:     make([]bool, n),
		Prefed:      make([]bool, n),
		Performance: make([]PerformanceType, n),
		Name:        make([]string, n),
	}
}

// Len returns the number of players in the table.
func (p *Players) Len() int { return len(p.RatingOf) }

// Scratch bundles the per-fit working buffers the Conductor owns for the
// duration of a single fit. A reimplementation that once relied on
// process-wide static arrays must pass this explicitly so independent fits
// (e.g. bootstrap resamples) never alias each other's mutable state.
type Scratch struct {
	Expected  []float64 // per-iteration expected score, scratch
	RatingBk  []float64 // snapshot of RatingOf for rollback
	RatingTmp []float64 // hypothetical rating for line-minimizer trials
}

// NewScratch allocates a Scratch sized for n players.
func NewScratch(n int) *Scratch {
	return &Scratch{
		Expected:  make([]float64, n),
		RatingBk:  make([]float64, n),
		RatingTmp: make([]float64, n),
	}
}

// Prior is a soft, absolute anchor on a single player's rating: an
// additional quadratic penalty term folded into Deviation, never a hard
// constraint. See relprior.h in the Ordo source this was distilled from.
type Prior struct {
	Player int
	Target float64
	Weight float64 // larger weight == stronger pull toward Target
}

// RelativePrior is a soft anchor on the rating difference between two
// players.
type RelativePrior struct {
	A, B   int
	Diff   float64 // target value of RatingOf[A] - RatingOf[B]
	Weight float64
}

// PriorSet collects the optional soft anchors for a fit. A nil *PriorSet is
// the common case (no priors) and contributes nothing to Deviation.
type PriorSet struct {
	Priors    []Prior
	Relatives []RelativePrior
}

// Penalty computes the additive quadratic penalty this prior set
// contributes to Deviation at the given ratings.
func (p *PriorSet) Penalty(ratingOf []float64) float64 {
	if p == nil {
		return 0
	}
	var accum float64
	for _, pr := range p.Priors {
		d := ratingOf[pr.Player] - pr.Target
		accum += pr.Weight * d * d
	}
	for _, rp := range p.Relatives {
		d := (ratingOf[rp.A] - ratingOf[rp.B]) - rp.Diff
		accum += rp.Weight * d * d
	}
	return accum
}
