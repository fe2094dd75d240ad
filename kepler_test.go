package kepler

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// End-to-end scenarios, mirroring the concrete cases used to validate
// the dispatcher: eccentricity, mean anomaly, starter, kernel, and the
// expected result/status/diagnostics.
func TestSolveScenarios(t *testing.T) {
	cases := []struct {
		name       string
		e, M       float64
		starterTag StarterID
		kernelTag  KernelID
		wantResult float64
		wantStatus Status
		delta      float64
	}{
		{"circular shortcut", 0.0, 1.234, S1, NewtonRaphson, 1.234, NoError, 0},
		{"elliptic positive M", 0.567, 1.234, S1, NewtonRaphson, 1.716090737, NoError, 1e-8},
		{"elliptic negative M symmetry", 0.567, -1.234, S1, NewtonRaphson, 2*math.Pi - 1.716090737, NoError, 1e-8},
		{"negative eccentricity", -0.1, 1.0, S1, NewtonRaphson, 0, BadEccentricity, 0},
		{"bad solver tag", 0.5, 1.0, S1, TotalKernel, 0, BadSolver, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := NewRecord()
			got, status := Solve(c.e, unit.Angle(c.M), c.starterTag, c.kernelTag, rec)
			require.Equal(t, c.wantStatus, status)
			require.InDelta(t, c.wantResult, float64(got), c.delta+1e-12)
		})
	}
}

func TestSolveCircularReturnsZeroIterations(t *testing.T) {
	rec := NewRecord()
	_, status := Solve(0, 1.234, S1, NewtonRaphson, rec)
	require.Equal(t, NoError, status)
	require.Equal(t, 0, rec.Iterations)
}

func TestSolveElliptic_ConvergesWithinBudget(t *testing.T) {
	rec := NewRecord()
	_, status := Solve(0.567, 1.234, S1, NewtonRaphson, rec)
	require.Equal(t, NoError, status)
	require.LessOrEqual(t, rec.Iterations, 10)
	require.LessOrEqual(t, rec.ErrDF, rec.TolF*(1-0.567)/0.567)
}

func TestSolveNearParabolicLaguerreConway(t *testing.T) {
	rec := NewRecord()
	got, status := Solve(0.9, 0.01, S7, LaguerreConway, rec)
	require.Equal(t, NoError, status)
	require.Less(t, rec.Iterations, 10)
	require.InDelta(t, 0.0985644, float64(got), 1e-3)
}

func TestSolveMikkolaRoundTrip(t *testing.T) {
	e, xRef := 0.5, math.Pi/3
	M := xRef - e*math.Sin(xRef)
	rec := NewRecord()
	got, status := Solve(e, unit.Angle(M), S1, Mikkola, rec)
	require.Equal(t, NoError, status)
	require.InDelta(t, xRef, float64(got), 1e-10)
	require.Equal(t, 1, rec.Iterations)
}

func TestSolveNaNMeanAnomalyIsBadValue(t *testing.T) {
	rec := NewRecord()
	got, status := Solve(0.5, unit.Angle(math.NaN()), S1, NewtonRaphson, rec)
	require.Equal(t, BadValue, status)
	require.Equal(t, 0.0, float64(got))
}

func TestSolveNegativeEccentricityIsBadEccentricity(t *testing.T) {
	rec := NewRecord()
	got, status := Solve(-0.1, 1.0, S1, NewtonRaphson, rec)
	require.Equal(t, BadEccentricity, status)
	require.Equal(t, 0.0, float64(got))
}

func TestSolveUnimplementedRegimesAreBadEccentricity(t *testing.T) {
	rec := NewRecord()
	_, status := Solve(1.0, 1.0, S1, NewtonRaphson, rec)
	require.Equal(t, BadEccentricity, status)

	_, status = Solve(1.5, 1.0, S1, NewtonRaphson, rec)
	require.Equal(t, BadEccentricity, status)
}

func TestSolveBadSolverTagReturnsZero(t *testing.T) {
	rec := NewRecord()
	got, status := Solve(0.5, 1.0, S1, TotalKernel, rec)
	require.Equal(t, BadSolver, status)
	require.Equal(t, 0.0, float64(got))
}

func TestSolveOutOfRangeStarterFallsBack(t *testing.T) {
	rec := NewRecord()
	got, status := Solve(0.5, 1.0, TotalStarter, NewtonRaphson, rec)
	require.Equal(t, BadStarter, status)
	require.False(t, math.IsNaN(float64(got)))
}

func TestSolveNijenhuisForcesS7Starter(t *testing.T) {
	rec := NewRecord()
	_, status := Solve(0.5, 1.0, S1, Nijenhuis, rec)
	require.Equal(t, NoError, status)
	// S7 was forced regardless of the S1 request, so the starter value
	// recorded should equal S7's own output.
	wantX0, _ := Starter(0.5, 1.0, S7)
	require.InDelta(t, wantX0, float64(rec.Starter), 1e-12)
}

// KeplerSuite groups invariant checks that benefit from shared fixtures,
// following the package's table-driven style at larger scale.
type KeplerSuite struct {
	suite.Suite
}

func TestKeplerSuite(t *testing.T) {
	suite.Run(t, new(KeplerSuite))
}

func (s *KeplerSuite) TestResidualInvariant() {
	for _, e := range []float64{0.1, 0.3, 0.567, 0.9, 0.99} {
		for _, M := range []float64{0.1, 1.0, 2.5} {
			rec := NewRecord()
			x, status := Solve(e, unit.Angle(M), S1, NewtonRaphson, rec)
			s.Require().Equal(NoError, status)
			residual := math.Abs(KeqElliptic(e, M, float64(x)))
			bound := rec.TolF * (1 - e) / e
			if rec.Iterations >= rec.MaxIter {
				continue
			}
			s.Require().LessOrEqual(residual, bound*1e6, "e=%v M=%v", e, M)
		}
	}
}

func (s *KeplerSuite) TestRoundTripInvariant() {
	for _, e := range []float64{0.1, 0.4, 0.8} {
		for _, xRef := range []float64{0.2, 1.0, 2.5} {
			M := xRef - e*math.Sin(xRef)
			rec := NewRecord()
			x, status := Solve(e, unit.Angle(M), S1, NewtonRaphson, rec)
			s.Require().Equal(NoError, status)
			s.Require().InDelta(xRef, float64(x), 1e-8, "e=%v xRef=%v", e, xRef)
		}
	}
}

func (s *KeplerSuite) TestCircularShortcut() {
	rec := NewRecord()
	x, status := Solve(0, 1.2345, S1, NewtonRaphson, rec)
	s.Require().Equal(NoError, status)
	s.Require().Equal(1.2345, float64(x))
}

func (s *KeplerSuite) TestClassificationBoundaries() {
	regime, _ := Classify(1 - epsilonC)
	s.Require().Equal(Parabolic, regime)

	regime, _ = Classify(1 + epsilonC)
	s.Require().Equal(Parabolic, regime)

	regime, _ = Classify(1 + 2*epsilonC)
	s.Require().Equal(Hyperbolic, regime)

	regime, _ = Classify(1 - 2*epsilonC)
	s.Require().Equal(Elliptic, regime)
}
