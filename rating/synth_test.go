package rating

import "github.com/cpmech/gosl/rnd"

// synthRoundRobin generates a double round-robin of games among the given
// true ratings, sampling each game's result from the WDL model at the given
// beta/whiteAdvantage/drawRate. Every ordered pair plays gamesPerPairing
// games. Grounded on the teacher's rnd.Init/rnd.Float64-based fixture
// generation (operators.go, rel-prob1to5.go).
func synthRoundRobin(trueRatings []float64, beta, whiteAdvantage, drawRate float64, gamesPerPairing int) *Games {
	n := len(trueRatings)
	games := &Games{}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for g := 0; g < gamesPerPairing; g++ {
				f := Expect(trueRatings[i]+whiteAdvantage, trueRatings[j], beta)
				pWin := f * f
				pDraw := drawRateFperf(f, drawRate)
				// keep the three probabilities consistent with the win/draw
				// split even though WDL's squared form is not directly
				// reused here: pWin dominates the sampling decision and the
				// remainder is split between draw and loss.
				u := rnd.Float64(0, 1)
				var result GameResult
				switch {
				case u < pWin:
					result = WhiteWin
				case u < pWin+pDraw:
					result = Draw
				default:
					result = BlackWin
				}
				games.White = append(games.White, i)
				games.Black = append(games.Black, j)
				games.Score = append(games.Score, result)
			}
		}
	}
	return games
}
