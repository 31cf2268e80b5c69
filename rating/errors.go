// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import "errors"

// errSuperPlayerEncounterIndex is the one fatal, data-integrity condition
// the core can hit: an encounter claimed by a super-player's opponent list
// names a player that is neither the encounter's white nor black index.
var errSuperPlayerEncounterIndex = errors.New("rating: encounter does not involve the super-player it was collected for")

// FitResult is the outcome of a Conductor.Fit call: the number of
// encounters in play at termination plus the fitted white advantage and
// draw rate. Ratings themselves are returned in-place via the Players
// table the caller supplied.
type FitResult struct {
	NEnc           int
	WhiteAdvantage float64
	DrawRate       float64
}
