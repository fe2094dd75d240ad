// Package kernel implements the solver kernels that refine an elliptic
// starter to the caller's tolerance: bracketing methods (bisection,
// secant, Wegstein), classic iteration (fixed-point, Newton-Raphson,
// Halley, Danby-Burkardt orders 4 and 5, Laguerre-Conway), and
// non-iterative composite methods (Mikkola, Markley, Nijenhuis).
//
// Every iterative kernel shares the same termination contract: continue
// while the iterate gap exceeds tolx, the scaled residual exceeds tolf,
// and the iteration count is under maxIter; stop the moment any one of
// those three fails. Fixed-point omits the gap test because its two
// residuals lag each other by one step. The composite kernels run a
// fixed number of steps and take no tolerances.
//
// The signatures differ by kernel: Bisection and Secant take no
// starter, FixedPoint takes no tolx, Mikkola and Markley take only e and
// M, and Nijenhuis takes e, M and the starter.
//
// This package holds no state; every function is pure given its
// arguments and allocates nothing.
package kernel

import "math"

// Result carries what a kernel writes back to the caller's diagnostics:
// the refined anomaly, the final iterate gap and scaled residual, and
// the iteration count actually performed.
type Result struct {
	X          float64
	ErrDX      float64
	ErrDF      float64
	Iterations int
}

// epsZ fixes the degenerate derivative at (e=1, x=0) so the Newton-series
// cores never divide by exactly zero.
const epsZ = 1e-19

// keqElliptic is the elliptic Kepler equation residual, f(x) = x -
// e*sin(x) - M. Kept local (rather than imported from the parent module)
// to avoid a dependency cycle; it is the same pure expression as the
// parent package's exported KeqElliptic.
func keqElliptic(e, M, x float64) float64 {
	return x - e*math.Sin(x) - M
}

// scaledResidual converts a raw function residual into the errDF
// diagnostic: an upper bound on angular error for elliptic eccentricity,
// via the e/(1-e) conversion factor.
func scaledResidual(e, M, x float64) float64 {
	return math.Abs(keqElliptic(e, M, x)) * e / (1 - e)
}

// clampIter bounds a loop counter so kernels never report more
// iterations than the caller's budget even if a bug would otherwise spin
// one extra time past maxIter before the guard is checked.
func clampIter(n, maxIter int) int {
	if n > maxIter {
		return maxIter
	}
	return n
}
