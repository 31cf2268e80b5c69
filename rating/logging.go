// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Logger accumulates a Conductor's progress report the way Island.Report
// accumulates a GA run's report: every line is appended to an in-memory
// buffer via io.Ff, and optionally echoed to stdout in color via io.Pf*
// when Verbose is set.
type Logger struct {
	Report  bytes.Buffer
	Verbose bool
}

// NewLogger creates a Logger with the requested verbosity.
func NewLogger(verbose bool) *Logger {
	return &Logger{Verbose: verbose}
}

// cycle announces the start of an outer convergence cycle.
func (l *Logger) cycle(n int) {
	io.Ff(&l.Report, "\nConvergence rating calculation (cycle #%d)\n\n", n)
	io.Ff(&l.Report, "%3s %4s %12s%14s\n", "phase", "iteration", "deviation", "resolution")
	if l.Verbose {
		io.Pfcyan("\nConvergence rating calculation (cycle #%d)\n\n", n)
	}
}

// phase reports one completed phase's final iteration count, normalized
// deviation, and resolution.
func (l *Logger) phase(phase, iteration int, outputDev, resol float64) {
	io.Ff(&l.Report, "%3d %7d %16.9f%14.5f\n", phase, iteration, outputDev, resol)
	if l.Verbose {
		io.Pf("%3d %7d %16.9f%14.5f\n", phase, iteration, outputDev, resol)
	}
}

// whiteAdvantage reports the white advantage adjustment for this cycle.
func (l *Logger) whiteAdvantage(wa float64) {
	io.Ff(&l.Report, "Adjusted White Advantage = %.1f\n", wa)
	if l.Verbose {
		io.Pfyel("Adjusted White Advantage = %.1f\n", wa)
	}
}

// drawRate reports the draw rate adjustment for this cycle.
func (l *Logger) drawRate(dr float64) {
	io.Ff(&l.Report, "Adjusted Draw Rate = %.1f %%\n\n", 100*dr)
	if l.Verbose {
		io.Pfyel("Adjusted Draw Rate = %.1f %%\n\n", 100*dr)
	}
}

// superPlayer reports that a super-player's rating was resolved, by name
// when one is available.
func (l *Logger) superPlayer(name string, j int, kind PerformanceType, ratingOf float64) {
	label := name
	if label == "" {
		label = io.Sf("player#%d", j)
	}
	kindName := "super-winner"
	if kind == SuperLoser {
		kindName = "super-loser"
	}
	io.Ff(&l.Report, "%s (%s) rated at %.1f\n", label, kindName, ratingOf)
	if l.Verbose {
		io.Pforan("%s (%s) rated at %.1f\n", label, kindName, ratingOf)
	}
}

func (l *Logger) done() {
	io.Ff(&l.Report, "done\n")
	if l.Verbose {
		io.Pf("done\n")
	}
}
