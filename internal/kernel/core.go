package kernel

import "math"

// taylor computes the Newton-series Taylor coefficients of the elliptic
// residual at x0: f0 is the residual itself, f1..f4 its successive
// derivatives (scaled by 1/i!), with epsZ added to f1 to keep it off zero
// at the degenerate point (e=1, x0=0).
func taylor(e, M, x0 float64) (f0, f1, f2, f3, f4 float64) {
	sx, cx := math.Sincos(x0)
	f0 = M - x0 + e*sx
	f1 = 1 - e*cx + epsZ
	f2 = e * sx / 2
	f3 = e * cx / 6
	f4 = -e * sx / 24
	return
}

// delta2 is the Newton-Raphson step.
func delta2(f0, f1 float64) float64 {
	return f0 / f1
}

// delta3 is the Halley step, seeded by the Newton-Raphson delta.
func delta3(f0, f1, f2, d2 float64) float64 {
	return f0 / (f1 + f2*d2)
}

// delta4 is the fourth-order Danby-Burkardt step, seeded by the Halley
// delta.
func delta4(f0, f1, f2, f3, d3 float64) float64 {
	return f0 / (f1 + f2*d3 + f3*d3*d3)
}

// delta5 is the fifth-order Danby-Burkardt step, seeded by the
// fourth-order delta and evaluated with nested fused multiply-add for a
// single rounding per term.
func delta5(f0, f1, f2, f3, f4, d4 float64) float64 {
	denom := math.FMA(d4, f4, f3)
	denom = math.FMA(d4, denom, f2)
	denom = math.FMA(d4, denom, f1)
	return f0 / denom
}

// Order2 returns the Newton-Raphson update of x0.
func Order2(e, M, x0 float64) float64 {
	f0, f1, _, _, _ := taylor(e, M, x0)
	return x0 + delta2(f0, f1)
}

// Order3 returns the Halley update of x0.
func Order3(e, M, x0 float64) float64 {
	f0, f1, f2, _, _ := taylor(e, M, x0)
	d2 := delta2(f0, f1)
	return x0 + delta3(f0, f1, f2, d2)
}

// Order4 returns the fourth-order Danby-Burkardt update of x0.
func Order4(e, M, x0 float64) float64 {
	f0, f1, f2, f3, _ := taylor(e, M, x0)
	d2 := delta2(f0, f1)
	d3 := delta3(f0, f1, f2, d2)
	return x0 + delta4(f0, f1, f2, f3, d3)
}

// Order5 returns the fifth-order Danby-Burkardt update of x0.
func Order5(e, M, x0 float64) float64 {
	f0, f1, f2, f3, f4 := taylor(e, M, x0)
	d2 := delta2(f0, f1)
	d3 := delta3(f0, f1, f2, d2)
	d4 := delta4(f0, f1, f2, f3, d3)
	return x0 + delta5(f0, f1, f2, f3, f4, d4)
}
