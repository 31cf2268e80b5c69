package rating

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/rnd"
)

func TestQuadFit1DFindsExactQuadraticMinimum(t *testing.T) {
	const want = 37.5
	f := func(x float64) float64 { d := x - want; return d * d }
	got := QuadFit1D(1e-6, -1000, 1000, f)
	if math.Abs(got-want) > 1e-3 {
		t.Fatalf("QuadFit1D found %.6f, want %.6f", got, want)
	}
}

func TestQuadFit1DFindsOffCenterMinimum(t *testing.T) {
	const want = -412.0
	f := func(x float64) float64 { d := x - want; return d*d + 3*math.Abs(d) }
	got := QuadFit1D(1e-5, -1000, 1000, f)
	if math.Abs(got-want) > 1e-2 {
		t.Fatalf("QuadFit1D found %.6f, want %.6f", got, want)
	}
}

func TestQuadFit1DNoisyQuadraticStress(t *testing.T) {
	rnd.Init(7)
	const want = 120.0
	noiseAmplitude := 1e-4
	f := func(x float64) float64 {
		d := x - want
		noise := (rnd.Float64(0, 1) - 0.5) * noiseAmplitude
		return d*d + noise
	}
	got := QuadFit1D(1e-3, -2000, 2000, f)
	if math.Abs(got-want) > 1.0 {
		t.Fatalf("QuadFit1D under noise found %.6f, want near %.6f", got, want)
	}
}

func TestFindParabolicMinXRejectsConcaveDownward(t *testing.T) {
	x := [4]float64{0, -1, 0, 1}
	y := [4]float64{0, -1, 0, -1} // upward bump: not a minimum at the center
	if _, ok := findParabolicMinX(x, y); ok {
		t.Fatalf("findParabolicMinX should reject a concave-downward fit")
	}
}

func TestFindParabolicMinXExactVertex(t *testing.T) {
	const vertex = 5.0
	sample := func(x float64) float64 { d := x - vertex; return d * d }
	x := [4]float64{0, 2, 5, 9}
	y := [4]float64{0, sample(2), sample(5), sample(9)}
	got, ok := findParabolicMinX(x, y)
	if !ok {
		t.Fatalf("findParabolicMinX rejected an exact parabola")
	}
	if math.Abs(got-vertex) > 1e-9 {
		t.Fatalf("findParabolicMinX found %.9f, want %.9f", got, vertex)
	}
}
