package rating

import (
	"math"
	"testing"
)

func TestWhiteAdvantageFitterRecoversKnownAdvantage(t *testing.T) {
	const beta = 0.0057
	const trueAdv = 35.0
	const n = 200000

	ratingOf := []float64{2000, 2000}
	f := Expect(2000+trueAdv, 2000, beta)
	w := int(f * n)

	enc := []Encounter{{
		White: 0, Black: 1, Played: n,
		W: w, D: 0, L: n - w,
	}}

	got := WhiteAdvantageFitter(0, enc, ratingOf, beta, 200)
	if math.Abs(got-trueAdv) > 3 {
		t.Fatalf("WhiteAdvantageFitter found %.3f, want near %.1f", got, trueAdv)
	}
}

func TestWhiteAdvantageFitterStaysNearZeroWithNoAdvantage(t *testing.T) {
	const beta = 0.0057
	const n = 100000

	ratingOf := []float64{2000, 2000}
	half := n / 2
	enc := []Encounter{{White: 0, Black: 1, Played: n, W: half, D: 0, L: n - half}}

	got := WhiteAdvantageFitter(0, enc, ratingOf, beta, 200)
	if math.Abs(got) > 3 {
		t.Fatalf("WhiteAdvantageFitter found %.3f with a perfectly balanced sample, want near 0", got)
	}
}
