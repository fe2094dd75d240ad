package starter_test

import (
	"math"
	"testing"

	"github.com/akobaz/libkes/internal/starter"
	"github.com/stretchr/testify/require"
)

func TestS0IsConstantPi(t *testing.T) {
	require.Equal(t, math.Pi, starter.S0(0.3, 1.2))
	require.Equal(t, math.Pi, starter.S0(0.9, 0.0))
}

func TestS1IsMeanAnomaly(t *testing.T) {
	require.Equal(t, 1.234, starter.S1(0.5, 1.234))
}

func TestS4AddsEccentricity(t *testing.T) {
	require.InDelta(t, 1.234+0.5, starter.S4(0.5, 1.234), 1e-15)
}

func TestS7IsMinimumOfThree(t *testing.T) {
	e, M := 0.6, 0.2
	got := starter.S7(e, M)
	want := math.Min(M/(1-e), math.Min(starter.S4(e, M), starter.S6(e, M)))
	require.InDelta(t, want, got, 1e-15)
}

func TestS9DegeneratesAtSingularity(t *testing.T) {
	require.Equal(t, 0.0, starter.S9(1, 0))
}

func TestS10DegeneratesAtZeroEccentricity(t *testing.T) {
	require.Equal(t, 1.5, starter.S10(0, 1.5))
}

func TestS10DegeneratesAtSingularity(t *testing.T) {
	require.Equal(t, 0.0, starter.S10(1, 0))
}

func TestS11DegeneratesAtUnitEccentricity(t *testing.T) {
	require.Equal(t, 1.1, starter.S11(1, 1.1))
}

// At e=0 every term of S11's degree-4 polynomial in e except the
// constant one vanishes, so the Horner-style evaluation collapses to M.
func TestS11MatchesMeanAnomalyAtZeroEccentricity(t *testing.T) {
	require.InDelta(t, 0.7, starter.S11(0, 0.7), 1e-15)
}

func TestS12BoundaryValues(t *testing.T) {
	for _, e := range []float64{0, 0.3, 0.7, 0.999} {
		require.InDelta(t, 0, starter.S12(e, 0), 1e-9)
		require.InDelta(t, math.Pi, starter.S12(e, math.Pi), 1e-9)
	}
}

// Small-e sanity check: every catalog starter (except the constant S0)
// should track the true solution more closely as e shrinks toward 0,
// since each of them reduces to M at e=0.
func TestCatalogErrorShrinksWithEccentricity(t *testing.T) {
	M := 0.7
	trueAnomaly := func(e float64) float64 {
		x := M
		for i := 0; i < 100; i++ {
			x = M + e*math.Sin(x)
		}
		return x
	}

	for idx, s := range starter.Catalog {
		if idx == 0 {
			continue // S0 is the constant starter, not e-dependent.
		}
		errBig := math.Abs(s(0.05, M) - trueAnomaly(0.05))
		errSmall := math.Abs(s(0.01, M) - trueAnomaly(0.01))
		require.LessOrEqual(t, errSmall, errBig+1e-9)
	}
}
