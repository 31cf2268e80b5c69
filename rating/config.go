// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// Numerical constants that must match bit-for-bit across implementations
// of this fitter (spec's External Interfaces section).
const (
	MinDevia   = 1e-9
	MinResol   = 1e-6
	StartDelta = 100.0

	initialDelta = 200.0
	initialKappa = 0.05
	kkDecay      = 0.995

	outerPhases        = 20
	outerRoundsPerIter = 10000
	outerStepDenom     = 2.0

	outerTimesDefault = 10
	waProgressStart   = StartDelta
	waProgressExit    = 0.01
)

// FitConfig holds the configuration a Conductor needs beyond the player
// table and encounters themselves: the logistic scale, the single-anchor
// bookkeeping, and the behavior flags that turn white-advantage/draw-rate
// adjustment on or off. Modeled on the teacher's Parameters
// Default/Read/CalcDerived triad.
type FitConfig struct {
	// model
	Beta float64 // fixed logistic scale

	// centering
	GeneralAverage         float64 // target for mean-centering
	Anchor                 int     // index of the single anchor
	AnchorUse              bool    // true iff a single anchor is in play
	MultipleAnchorsPresent bool

	// behavior
	AdjustWhiteAdvantage bool
	AdjustDrawRate       bool

	// in/out: seeded before Fit, overwritten with the fitted value on return
	WhiteAdvantage float64
	DrawRate       float64

	// bookkeeping
	Seed    int  // seed for gosl/rnd, used by fixture/test tooling only
	Verbose bool // echo progress to stdout via the Logger
}

// Default sets the conventional Ordo defaults: beta tuned for a 400-point
// Elo scale, no anchor, both white-advantage and draw-rate adjustment on.
func (c *FitConfig) Default() {
	c.Beta = 1.0 / 400 * 2.0 * 1.098612288668 // 2*ln(3)/400 == ln(9)/400: a 400-point gap gives a 0.9 expected score
	c.GeneralAverage = 2300
	c.AnchorUse = false
	c.MultipleAnchorsPresent = false
	c.AdjustWhiteAdvantage = true
	c.AdjustDrawRate = true
	c.WhiteAdvantage = 0
	c.DrawRate = drawRateStartingPoint
	c.Seed = 0
	c.Verbose = true
}

// Read loads configuration overrides from a JSON file, after seeding
// Default values.
func (c *FitConfig) Read(filenamepath string) {
	c.Default()
	b, err := io.ReadFile(filenamepath)
	if err != nil {
		chk.Panic("cannot read rating-fit config file %q", filenamepath)
	}
	if err := json.Unmarshal(b, c); err != nil {
		chk.Panic("cannot unmarshal rating-fit config file %q", filenamepath)
	}
}

// CalcDerived validates the configuration and seeds the shared random
// source used by fixture/test tooling, mirroring Parameters.CalcDerived's
// rnd.Init(o.Seed) call.
func (c *FitConfig) CalcDerived() {
	if c.Beta <= 0 {
		chk.Panic("beta must be greater than 0. beta=%g is invalid", c.Beta)
	}
	if c.AnchorUse && c.MultipleAnchorsPresent {
		chk.Panic("a single Anchor and MultipleAnchorsPresent are mutually exclusive")
	}
	rnd.Init(c.Seed)
}
