package kernel

import "math"

// Secant brackets the root the same way Bisection does, but replaces the
// midpoint update with the secant formula, reaching super-linear order
// near the golden ratio (~1.618) instead of bisection's linear order.
func Secant(e, M, tolf, tolx float64, maxIter int) Result {
	xl, xr := M, M+e
	fl := keqElliptic(e, M, xl)
	fr := keqElliptic(e, M, xr)

	x := xl
	n := 0
	errDX, errDF := xr-xl, math.Abs(fl)*e/(1-e)
	for errDX > tolx && errDF > tolf && n < maxIter {
		xNew := (fr*xl - fl*xr) / (fr - fl)
		fx := keqElliptic(e, M, xNew)

		errDX = math.Abs(xNew - x)
		x = xNew
		errDF = math.Abs(fx) * e / (1 - e)

		xl, fl = xr, fr
		xr, fr = x, fx
		n++
	}
	return Result{X: x, ErrDX: errDX, ErrDF: errDF, Iterations: clampIter(n, maxIter)}
}
