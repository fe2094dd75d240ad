package kernel

import "math"

// coreStep is the shape shared by every Newton-series core order.
type coreStep func(e, M, x0 float64) float64

// iterate drives any single-step core function through the shared
// convergence loop: continue while the iterate gap exceeds tolx, the
// scaled residual exceeds tolf, and the count is under maxIter.
func iterate(step coreStep, e, M, starter, tolf, tolx float64, maxIter int) Result {
	x := starter
	errDX, errDF := math.Inf(1), math.Abs(keqElliptic(e, M, x))*e/(1-e)

	n := 0
	for errDX > tolx && errDF > tolf && n < maxIter {
		xNew := step(e, M, x)
		errDX = math.Abs(xNew - x)
		x = xNew
		errDF = math.Abs(keqElliptic(e, M, x)) * e / (1 - e)
		n++
	}
	return Result{X: x, ErrDX: errDX, ErrDF: errDF, Iterations: n}
}

// NewtonRaphson wraps the order-2 Newton-series core in the shared loop.
func NewtonRaphson(e, M, starter, tolf, tolx float64, maxIter int) Result {
	return iterate(Order2, e, M, starter, tolf, tolx, maxIter)
}

// Halley wraps the order-3 Newton-series core in the shared loop.
func Halley(e, M, starter, tolf, tolx float64, maxIter int) Result {
	return iterate(Order3, e, M, starter, tolf, tolx, maxIter)
}

// DanbyBurkardt4 wraps the order-4 Newton-series core in the shared loop.
func DanbyBurkardt4(e, M, starter, tolf, tolx float64, maxIter int) Result {
	return iterate(Order4, e, M, starter, tolf, tolx, maxIter)
}

// DanbyBurkardt5 wraps the order-5 Newton-series core in the shared
// loop.
func DanbyBurkardt5(e, M, starter, tolf, tolx float64, maxIter int) Result {
	return iterate(Order5, e, M, starter, tolf, tolx, maxIter)
}
