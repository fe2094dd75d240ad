package kernel

import "math"

// sn and snPrime are minimax polynomial approximants to sin(x) and its
// derivative, valid on [0, pi/2] and extended by the stated symmetries
// for x > pi/2. They seed the Nijenhuis Halley step; they are not a
// general sine replacement.
func sn(x float64) float64 {
	if x > math.Pi/2 {
		x = math.Pi - x
	}
	const a, b = -0.16605, 0.00761
	x2 := x * x
	return x * (1 + a*x2 + b*x2*x2)
}

func snPrime(x float64) float64 {
	sign := 1.0
	if x > math.Pi/2 {
		x = math.Pi - x
		sign = -1.0
	}
	const ap, bp = -0.49815, 0.03805
	x2 := x * x
	return sign * (1 + ap*x2 + bp*x2*x2)
}

// Nijenhuis is a non-iterative composite that splits the starter into a
// near-parabolic region (region D: M < 0.4 and e > 0.6) and the general
// regions A/B/C, then applies a generalized Newton polish of fixed
// depth N=3. §4.6 forces the S7 starter ahead of this kernel for
// regions A/B/C; the starter argument is that seed.
func Nijenhuis(e, M, starter float64) Result {
	var x float64
	if M < 0.4 && e > 0.6 {
		a := (1 - e) / (0.5 + 4*e)
		b := M / (2 * (0.5 + 4*e))
		c := math.Cbrt(math.Sqrt(a*a*a+b*b) + b)
		var s float64
		if c > 0 {
			s = c - a/c
		}
		x0 := M + e*s*(3-4*s*s)
		x = Order2(e, M, x0)
	} else {
		x0 := starter
		f0 := M - x0 + e*sn(x0)
		f1 := 1 - e*snPrime(x0)
		f2 := e * sn(x0) / 2
		d2 := f0 / f1
		d3 := f0 / (f1 + f2*d2)
		x = x0 + d3
	}

	f0, f1, f2, f3, _ := taylor(e, M, x)
	h1 := f0 / f1
	h2 := f0 / (f2 + h1*f1)
	h3 := f0 / (f3 + h1*f2 + h2*f1)
	if x > 0 {
		x += h3
	}

	return Result{X: x, ErrDX: 0, ErrDF: scaledResidual(e, M, x), Iterations: 1}
}
