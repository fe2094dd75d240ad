package kernel

import "math"

// FixedPoint iterates x_{n+1} = M + e*sin(x_n): linear convergence with
// contraction factor e, diverging for e >= 1. The errDX test is omitted
// from the termination contract here, per the shared kernel contract:
// the fixed-point map's two residuals phase-lag by one step, so errDX
// would be stale relative to errDF.
func FixedPoint(e, M, starter, tolf float64, maxIter int) Result {
	x := starter
	fx := keqElliptic(e, M, x)
	errDF := math.Abs(fx) * e / (1 - e)
	errDX := 0.0

	n := 0
	for errDF > tolf && n < maxIter {
		xNew := M + e*math.Sin(x)
		errDX = math.Abs(xNew - x)
		x = xNew
		errDF = math.Abs(keqElliptic(e, M, x)) * e / (1 - e)
		n++
	}
	return Result{X: x, ErrDX: errDX, ErrDF: errDF, Iterations: n}
}
