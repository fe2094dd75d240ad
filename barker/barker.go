// Copyright 2026 The libkes Authors
// License MIT: http://www.opensource.org/licenses/MIT

// Package barker solves Barker's Equation, the parabolic (e=1) form of
// Kepler's Equation: s + s^3/3 = M, s = tan(nu/2). Unlike the elliptic
// dispatcher in the parent package, Barker's Equation has a closed-form
// solution and needs no starter/kernel composition.
package barker

import "math"

// Solve returns the true anomaly nu satisfying s + s^3/3 = M, s =
// tan(nu/2), via the classic y - 1/y substitution that turns the
// depressed cubic into a single cube root. Adapted from the structure
// of soniakeys/meeus parabolic.Elements.AnomalyDistance, specialized to
// take mean anomaly directly rather than time since perihelion and
// perihelion distance.
func Solve(M float64) float64 {
	g := 1.5 * M
	y := math.Cbrt(g + math.Sqrt(g*g+1))
	s := y - 1/y
	return 2 * math.Atan(s)
}

// Residual evaluates Barker's Equation, f(s) = s + s^3/3 - M, at the s
// implied by true anomaly nu. Exposed for callers verifying a Solve
// result against the equation evaluator, the same way KeqParabolic is
// exposed in the parent package.
func Residual(M, nu float64) float64 {
	s := math.Tan(nu * 0.5)
	return s + s*s*s/3 - M
}
