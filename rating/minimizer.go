// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rating

import "math"

// Objective is the capability abstraction LineMinimizer1D minimizes: a
// plain closure capturing whatever context it needs, replacing the
// original's `(double, const void*) -> double` function-pointer-plus-opaque
// pointer pairing.
type Objective func(x float64) float64

// parabolicDenomCutoff guards the parabolic-vertex fit against a
// near-degenerate three-point fit; below this the fit is rejected in favor
// of the bracket midpoint.
const parabolicDenomCutoff = 1e-64

// QuadFit1D is Stage A of LineMinimizer1D: adaptive bracket expansion
// around an initial center (a+b)/2, handing off to the Stage B interior
// refinement (quadfit1d2) once a true bracket (ei >= ej <= ek) is found.
func QuadFit1D(limit, a, b float64, f Objective) float64 {
	center := (a + b) / 2
	deltaNeg := math.Abs(b-a) / 2
	deltaPos := deltaNeg

	ei := f(center - deltaNeg)
	ej := f(center)
	ek := f(center + deltaPos)

	for {
		switch {
		case ei >= ej && ej <= ek:
			return quadfit1d2(limit, center-deltaNeg, center+deltaPos, f)
		case ej >= ei && ei <= ek:
			deltaNeg *= 2
			ek, ej = ej, ei
			ei = f(center - deltaNeg)
		case ei >= ek && ek <= ej:
			deltaPos *= 2
			ei, ej = ej, ek
			ek = f(center + deltaPos)
		default:
			// Noisy, non-unimodal sample: widen both sides and retry.
			deltaNeg *= 2
			deltaPos *= 2
			ei = f(center - deltaNeg)
			ek = f(center + deltaPos)
		}
	}
}

// bracket3 holds the three sorted samples x[1] < x[2] < x[3] (plus a probe
// slot x[0]) that quadfit1d2 refines, mirroring the original's 1-indexed
// arrays closely enough to keep the control flow recognizable.
type bracket3 struct {
	x, y [4]float64
}

// optimumCenter fits the unique parabola through the three bracket samples
// and returns its vertex, falling back to the bracket midpoint when the
// samples are too close together, the fit denominator is near zero, or the
// parabola opens downward (no minimum).
func optimumCenter(b bracket3) float64 {
	const epsilon = 1e-7
	x, y := b.x, b.y
	if !(x[3]-x[1] > epsilon && x[2]-x[1] > epsilon && x[3]-x[2] > epsilon) {
		return (x[3] + x[1]) / 2
	}
	if result, ok := findParabolicMinX(x, y); ok {
		return result
	}
	return (x[3] + x[1]) / 2
}

// findParabolicMinX computes the vertex of the parabola through
// (x[1],y[1]), (x[2],y[2]), (x[3],y[3]). The interval midpoint is
// subtracted before computing to reduce cancellation, per spec.
func findParabolicMinX(x, y [4]float64) (float64, bool) {
	reference := (x[1] + x[3]) / 2
	x1 := x[1] - reference
	x2 := x[2] - reference
	x3 := x[3] - reference

	y12 := y[1] - y[2]
	x12 := x1 - x2
	y13 := y[1] - y[3]
	x13 := x1 - x3
	s12 := x1*x1 - x2*x2
	s13 := x1*x1 - x3*x3

	if x12*y13 <= y12*x13 {
		return 0, false // concave downward: not a minimum
	}

	d1 := y13 * x12
	d2 := y12 * x13
	den := d1 - d2
	if den < parabolicDenomCutoff {
		return 0, false
	}

	res := ((y13*s12 - y12*s13) / den) / 2
	return res + reference, true
}

// quadfit1d2 is Stage B of LineMinimizer1D: interior refinement of a
// bracket [a, b] by alternating parabolic-vertex probes with geometric
// fallback probes once chopping stalls on one side three times in a row.
func quadfit1d2(limit, a, b float64, f Objective) float64 {
	var br bracket3
	if a > b {
		a, b = b, a
	}
	br.x[1] = a
	br.x[2] = (a + b) / 2
	br.x[3] = b
	for i := 1; i <= 3; i++ {
		br.y[i] = f(br.x[i])
	}

	br.x[0] = optimumCenter(br)
	br.y[0] = f(br.x[0])

	var rightChop, leftChop int

	for math.Abs(br.x[3]-br.x[1]) > limit {
		equality := false

		switch {
		case br.x[0] < br.x[2] && br.y[0] <= br.y[2]:
			rightChop++
			leftChop = 0
			br.x[3], br.y[3] = br.x[2], br.y[2]
			br.x[2], br.y[2] = br.x[0], br.y[0]
		case br.x[0] > br.x[2] && br.y[0] > br.y[2]:
			rightChop++
			leftChop = 0
			br.x[3], br.y[3] = br.x[0], br.y[0]
		case br.x[0] < br.x[2] && br.y[0] > br.y[2]:
			rightChop = 0
			leftChop++
			br.x[1], br.y[1] = br.x[0], br.y[0]
		case br.x[0] > br.x[2] && br.y[0] <= br.y[2]:
			rightChop = 0
			leftChop++
			br.x[1], br.y[1] = br.x[2], br.y[2]
			br.x[2], br.y[2] = br.x[0], br.y[0]
		default:
			equality = true
			if br.x[3]-br.x[2] > br.x[2]-br.x[1] {
				br.x[0] = br.x[2] + 0.01*(br.x[3]-br.x[2])
			} else {
				br.x[0] = br.x[2] - 0.01*(br.x[2]-br.x[1])
			}
		}

		switch {
		case equality:
			br.y[0] = f(br.x[0])
		case rightChop < 3 && leftChop < 3:
			br.x[0] = optimumCenter(br)
			br.y[0] = f(br.x[0])
		default:
			half := (br.x[3] + br.x[1]) / 2
			br.x[0] = br.x[2]
			switch {
			case br.x[3]-br.x[2] > 2*(br.x[2]-br.x[1]):
				for {
					br.x[0] = br.x[0] + (br.x[0] - br.x[1])
					br.y[0] = f(br.x[0])
					if !(br.x[0] < half && br.y[0] <= br.y[2]) {
						break
					}
				}
			case br.x[3]-br.x[2] < (br.x[2]-br.x[1])/2:
				for {
					br.x[0] = br.x[0] - (br.x[3] - br.x[0])
					br.y[0] = f(br.x[0])
					if !(br.x[0] > half && br.y[0] <= br.y[2]) {
						break
					}
				}
			default:
				if leftChop == 0 {
					br.x[0] = (br.x[2] + br.x[1]) / 2
				} else {
					br.x[0] = (br.x[2] + br.x[3]) / 2
				}
				br.y[0] = f(br.x[0])
			}
		}
	}

	return br.x[2]
}
