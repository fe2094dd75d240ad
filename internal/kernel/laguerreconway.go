package kernel

import "math"

// LaguerreConway applies the Laguerre-Conway correction, a cubically
// convergent update built from the same f0/f1 Taylor coefficients as the
// Newton-series cores but combined under a square root so the step
// stays bounded even when f1 is small.
func LaguerreConway(e, M, starter, tolf, tolx float64, maxIter int) Result {
	x := starter
	errDX, errDF := math.Inf(1), math.Abs(keqElliptic(e, M, x))*e/(1-e)

	n := 0
	for errDX > tolx && errDF > tolf && n < maxIter {
		f0, f1, _, _, _ := taylor(e, M, x)
		// The spec's discriminant is stated in terms of its own
		// f0 = x-e*sin(x)-M, the negative of taylor's f0 above; squaring
		// f0 in the 16*f1^2 term leaves that sign irrelevant, but the
		// cross term 20*f0*e*sin(x) flips, so it is added here rather
		// than subtracted.
		disc := math.Abs(16*f1*f1 + 20*f0*e*math.Sin(x))
		delta := 5 * f0 / (f1 + math.Sqrt(disc))

		// taylor's f0 is M-x+e*sin(x) (the root offset, opposite sign
		// from the spec's f(x)=x-e*sin(x)-M convention), so the
		// correction is added rather than subtracted here.
		xNew := x + delta
		errDX = math.Abs(xNew - x)
		x = xNew
		errDF = math.Abs(keqElliptic(e, M, x)) * e / (1 - e)
		n++
	}
	return Result{X: x, ErrDX: errDX, ErrDF: errDF, Iterations: n}
}
