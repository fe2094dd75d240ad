package kernel

import "math"

// WegsteinSecant damps the fixed-point map M + e*sin(x) with a
// secant-style acceleration, converging where plain fixed-point iteration
// would be too slow (or, for e close to 1, would diverge).
func WegsteinSecant(e, M, starter, tolf, tolx float64, maxIter int) Result {
	x0 := starter
	y0 := M + e*math.Sin(x0)
	x1 := y0
	y1 := M + e*math.Sin(x1)

	n := 0
	x := x1
	errDX, errDF := math.Abs(x1-x0), math.Abs(keqElliptic(e, M, x1))*e/(1-e)
	for errDX > tolx && errDF > tolf && n < maxIter {
		denom := (x0-y0)/(x1-y1) - 1
		x2 := x1 + (x1-x0)/denom
		y2 := M + e*math.Sin(x2)

		errDX = math.Abs(x2 - x1)
		errDF = math.Abs(keqElliptic(e, M, x2)) * e / (1 - e)

		x0, y0 = x1, y1
		x1, y1 = x2, y2
		x = x2
		n++
	}
	return Result{X: x, ErrDX: errDX, ErrDF: errDF, Iterations: clampIter(n, maxIter)}
}
