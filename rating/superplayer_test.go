package rating

import (
	"errors"
	"math"
	"testing"
)

func TestCollectOpponentsRejectsForeignEncounter(t *testing.T) {
	enc := []Encounter{{White: 5, Black: 6, Played: 1}}
	_, err := collectOpponents(0, enc, []float64{2000, 2000, 2000, 2000, 2000, 2000, 2000}, 0)
	if !errors.Is(err, errSuperPlayerEncounterIndex) {
		t.Fatalf("collectOpponents should reject an encounter that names neither White nor Black as the target, got err=%v", err)
	}
}

func TestCollectOpponentsRotatesWhiteAdvantageBySide(t *testing.T) {
	ratingOf := []float64{2000, 2100}
	enc := []Encounter{
		{White: 0, Black: 1, Played: 1},
		{White: 1, Black: 0, Played: 1},
	}
	opponents, err := collectOpponents(0, enc, ratingOf, 20)
	if err != nil {
		t.Fatalf("collectOpponents: %v", err)
	}
	if len(opponents) != 2 {
		t.Fatalf("got %d opponents, want 2", len(opponents))
	}
	// as White, the opponent (Black)'s rating shifts by -whiteAdvantage from j's view.
	if opponents[0].rating != ratingOf[1]-20 {
		t.Fatalf("opponent seen from White side = %g, want %g", opponents[0].rating, ratingOf[1]-20)
	}
	// as Black, the opponent (White)'s rating shifts by +whiteAdvantage from j's view.
	if opponents[1].rating != ratingOf[1]+20 {
		t.Fatalf("opponent seen from Black side = %g, want %g", opponents[1].rating, ratingOf[1]+20)
	}
}

func TestSuperPlayerRaterRatesUndefeatedPlayerWellAboveOpponents(t *testing.T) {
	beta := 0.0057
	players := NewPlayers(4)
	players.RatingOf[0] = 2000 // seed; irrelevant for a flagged super-winner
	players.RatingOf[1] = 2000
	players.RatingOf[2] = 2100
	players.RatingOf[3] = 1900
	players.Performance[0] = SuperWinner
	players.Flagged[0] = true
	players.Obtained[0] = 10 // 10 games, all wins

	enc := []Encounter{
		{White: 0, Black: 1, Played: 4, WScore: 4, W: 4},
		{White: 2, Black: 0, Played: 3, WScore: 0, L: 3},
		{White: 0, Black: 3, Played: 3, WScore: 3, W: 3},
	}

	if err := SuperPlayerRater(enc, players, 0, beta, nil); err != nil {
		t.Fatalf("SuperPlayerRater: %v", err)
	}

	if players.Flagged[0] {
		t.Fatalf("an undefeated player's rating should be resolved and un-flagged")
	}
	if players.RatingOf[0] <= 2100 {
		t.Fatalf("an undefeated player's rating should end up well above its strongest opponent (2100), got %g", players.RatingOf[0])
	}
	if math.IsNaN(players.RatingOf[0]) || math.IsInf(players.RatingOf[0], 0) {
		t.Fatalf("resolved rating must be finite, got %g", players.RatingOf[0])
	}
}

func TestSuperPlayerRaterSkipsNormalPlayers(t *testing.T) {
	players := NewPlayers(2)
	players.RatingOf[0] = 2000
	players.RatingOf[1] = 2000
	players.Performance[0] = Normal
	players.Performance[1] = Normal

	enc := []Encounter{{White: 0, Black: 1, Played: 2, WScore: 1, D: 2}}
	if err := SuperPlayerRater(enc, players, 0, 0.0057, nil); err != nil {
		t.Fatalf("SuperPlayerRater: %v", err)
	}
	if players.RatingOf[0] != 2000 || players.RatingOf[1] != 2000 {
		t.Fatalf("SuperPlayerRater must leave Normal players untouched")
	}
}
