package rating

import (
	"math"
	"testing"
)

func TestDrawRateFperfEqualStrengthInvariant(t *testing.T) {
	for _, dr0 := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		got := drawRateFperf(0.5, dr0)
		if math.Abs(got-dr0) > 1e-9 {
			t.Fatalf("drawRateFperf(0.5, %.2f) = %.9f, want %.9f (defines dr0 at equal strength)", dr0, got, dr0)
		}
	}
}

func TestDrawRateFperfZeroRateIsZero(t *testing.T) {
	if got := drawRateFperf(0.5, 0); got != 0 {
		t.Fatalf("drawRateFperf at dr0=0 = %g, want 0", got)
	}
}

func TestDrawRateFitterRecoversKnownRate(t *testing.T) {
	const beta = 0.0057
	const trueRate = 0.4
	const n = 200000

	ratingOf := []float64{2000, 2000}
	f := Expect(2000, 2000, beta)
	d := int(drawRateFperf(f, trueRate) * n)
	decisive := n - d
	w := decisive / 2

	enc := []Encounter{{
		White: 0, Black: 1, Played: n,
		W: w, D: d, L: decisive - w,
	}}

	got := DrawRateFitter(0, enc, ratingOf, beta)
	if math.Abs(got-trueRate) > 0.03 {
		t.Fatalf("DrawRateFitter found %.4f, want near %.2f", got, trueRate)
	}
}

func TestDrawRateFitterClampedToUnitInterval(t *testing.T) {
	const beta = 0.0057
	ratingOf := []float64{2000, 2000}
	// a pathological all-decisive sample should not push the fitted rate
	// outside its valid range.
	enc := []Encounter{{White: 0, Black: 1, Played: 100, W: 50, D: 0, L: 50}}
	got := DrawRateFitter(0, enc, ratingOf, beta)
	if got < 0 || got > 1 {
		t.Fatalf("DrawRateFitter = %g, want in [0,1]", got)
	}
}
