package kepler

import "math"

// KeqElliptic evaluates the elliptic form of Kepler's Equation,
// f(x) = x - e·sin(x) - M, at candidate eccentric anomaly x.
//
// The caller is responsible for argument sanity; this function reports no
// errors.
func KeqElliptic(e, M, x float64) float64 {
	return x - e*math.Sin(x) - M
}

// KeqHyperbolic evaluates the hyperbolic form of Kepler's Equation,
// f(x) = e·sinh(x) - x - M, at candidate hyperbolic anomaly x.
func KeqHyperbolic(e, M, x float64) float64 {
	return e*math.Sinh(x) - x - M
}

// KeqParabolic evaluates Barker's Equation, f(s) = s + s^3/3 - M, where
// s = tan(nu/2) for true anomaly nu. The expression is undefined at
// nu = pi (s diverges); callers must avoid that argument.
func KeqParabolic(M, nu float64) float64 {
	s := math.Tan(nu * 0.5)
	return s + s*s*s/3 - M
}
