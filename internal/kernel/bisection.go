package kernel

import "math"

// Bisection brackets the root between xl=M and xr=M+e and halves the
// interval until convergence, guaranteeing linear convergence bounded by
// ceil(log2((M+e-M)/tolx)) iterations. Grounded in the shape of
// soniakeys/meeus iterate.BinaryRoot, specialized to the elliptic
// bracket and the shared tolf/tolx/maxIter contract.
func Bisection(e, M, tolf, tolx float64, maxIter int) Result {
	xl, xr := M, M+e

	if xr-xl < tolx {
		x := (xl + xr) / 2
		return Result{X: x, ErrDX: 0, ErrDF: scaledResidual(e, M, x), Iterations: 0}
	}

	fl := keqElliptic(e, M, xl)
	if math.Abs(fl) < tolf {
		return Result{X: xl, ErrDX: 0, ErrDF: math.Abs(fl) * e / (1 - e), Iterations: 0}
	}
	if fr := keqElliptic(e, M, xr); math.Abs(fr) < tolf {
		return Result{X: xr, ErrDX: 0, ErrDF: math.Abs(fr) * e / (1 - e), Iterations: 0}
	}

	x := xl
	n := 0
	errDX, errDF := xr-xl, math.Abs(fl)*e/(1-e)
	for errDX > tolx && errDF > tolf && n < maxIter {
		xOld := x
		x = (xl + xr) / 2
		fx := keqElliptic(e, M, x)
		if fl*fx < 0 {
			xr = x
		} else {
			xl = x
			fl = fx
		}
		errDX = math.Abs(x - xOld)
		errDF = math.Abs(fx) * e / (1 - e)
		n++
	}
	return Result{X: x, ErrDX: errDX, ErrDF: errDF, Iterations: clampIter(n, maxIter)}
}
