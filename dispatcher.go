package kepler

import (
	"math"

	"github.com/akobaz/libkes/internal/kernel"
	"github.com/soniakeys/unit"
)

// Solve is the library's primary entry point. It validates e and M,
// classifies the eccentricity regime, reduces M into a canonical
// interval, invokes the chosen starter and kernel, and restores the
// symmetry the reduction applied. rec carries configuration in and
// receives diagnostics out; it must not be shared across goroutines.
//
// M and the returned eccentric anomaly are unit.Angle: the mean and
// eccentric anomalies are angle quantities at this boundary, following
// the teacher corpus's convention of wrapping radian values crossing a
// package's exported surface (e.g. parabolic.Elements.AnomalyDistance).
// Internally the solver still works in bare float64 radians, exactly as
// the wrapped functions do.
func Solve(e float64, M unit.Angle, starterTag StarterID, kernelTag KernelID, rec *Record) (unit.Angle, Status) {
	mf := M.Rad()
	if !isFinite(e) || !isFinite(mf) {
		rec.Result = 0
		return 0, BadValue
	}

	rec.clamp()

	regime, regimeStatus := Classify(e)
	if regimeStatus != NoError {
		rec.Result = 0
		return 0, BadEccentricity
	}
	switch regime {
	case Circular:
		rec.Result = M
		rec.Starter = M
		return M, NoError
	case Parabolic, Hyperbolic:
		// Not implemented: the parabolic and hyperbolic branches are
		// named in the enumeration but have no dispatcher support.
		rec.Result = 0
		return 0, BadEccentricity
	}

	mReduced := ReduceAngle(mf)
	side := 1.0
	if mReduced < 0 {
		side = -1.0
	}
	mReduced = math.Abs(mReduced)

	status := NoError
	if kernelTag == Nijenhuis {
		starterTag = S7
	}
	x0, starterStatus := Starter(e, mReduced, starterTag)
	if starterStatus != NoError {
		status = BadStarter
		x0 = mReduced + e
	}
	rec.Starter = unit.Angle(x0)

	if kernelTag < 0 || kernelTag >= TotalKernel {
		rec.Result = 0
		return 0, BadSolver
	}

	res := runKernel(kernelTag, e, mReduced, x0, rec.TolF, rec.TolX, rec.MaxIter)
	rec.ErrDX = res.ErrDX
	rec.ErrDF = res.ErrDF
	rec.Iterations = res.Iterations
	if rec.CountEvals {
		rec.NbrFktEval = res.Iterations
		rec.NbrSinEval = res.Iterations
		rec.NbrCosEval = res.Iterations
	}
	if rec.Trace != nil {
		rec.Trace.Trace("solve: kernel=%s starter=%s x=%v iterations=%d errDF=%v errDX=%v",
			kernelTag, starterTag, res.X, res.Iterations, res.ErrDF, res.ErrDX)
	}

	result := res.X
	if side < 0 {
		result = 2*math.Pi - result
	}
	rec.Result = unit.Angle(result)

	return unit.Angle(result), status
}

// runKernel dispatches to the internal/kernel implementation named by
// tag, adapting the shared (e, M, starter, tolf, tolx, maxIter)
// arguments to each kernel's actual signature.
func runKernel(tag KernelID, e, M, starter, tolf, tolx float64, maxIter int) kernel.Result {
	switch tag {
	case Bisection:
		return kernel.Bisection(e, M, tolf, tolx, maxIter)
	case Secant:
		return kernel.Secant(e, M, tolf, tolx, maxIter)
	case WegsteinSecant:
		return kernel.WegsteinSecant(e, M, starter, tolf, tolx, maxIter)
	case FixedPoint:
		return kernel.FixedPoint(e, M, starter, tolf, maxIter)
	case NewtonRaphson:
		return kernel.NewtonRaphson(e, M, starter, tolf, tolx, maxIter)
	case Halley:
		return kernel.Halley(e, M, starter, tolf, tolx, maxIter)
	case DanbyBurkardt4:
		return kernel.DanbyBurkardt4(e, M, starter, tolf, tolx, maxIter)
	case DanbyBurkardt5:
		return kernel.DanbyBurkardt5(e, M, starter, tolf, tolx, maxIter)
	case LaguerreConway:
		return kernel.LaguerreConway(e, M, starter, tolf, tolx, maxIter)
	case Mikkola:
		return kernel.Mikkola(e, M)
	case Markley:
		return kernel.Markley(e, M)
	case Nijenhuis:
		return kernel.Nijenhuis(e, M, starter)
	default:
		return kernel.Result{}
	}
}
