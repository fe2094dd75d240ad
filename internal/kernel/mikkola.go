package kernel

import "math"

// Mikkola is a non-iterative two-step composite: a cubic approximation
// seeds a quintic-corrected starter, then a single order-5 core polish
// refines it, independent of tolf/tolx/maxIter.
func Mikkola(e, M float64) Result {
	a := (1 - e) / (0.5 + 4*e)
	b := M / (2 * (0.5 + 4*e))

	c := math.Cbrt(math.Sqrt(a*a*a+b*b) + b)
	var s float64
	if c > 0 {
		s = c - a/c
	}
	s -= 0.078 * math.Pow(s, 5) / (1 + e)

	x0 := M + e*s*(3-4*s*s)
	x := Order5(e, M, x0)
	return Result{X: x, ErrDX: 0, ErrDF: scaledResidual(e, M, x), Iterations: 1}
}
