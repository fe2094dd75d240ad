package kepler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceAngleIdempotent(t *testing.T) {
	for _, x := range []float64{0, 1.5, -1.5, 10, -10, math.Pi, -math.Pi, 3 * math.Pi} {
		r := ReduceAngle(x)
		require.GreaterOrEqual(t, r, -math.Pi)
		require.Less(t, r, math.Pi)
		require.InDelta(t, r, ReduceAngle(r), 1e-12)
	}
}

func TestReduceAngleMatchesSine(t *testing.T) {
	for _, x := range []float64{2.3, -4.1, 7.9, -9.2} {
		r := ReduceAngle(x)
		require.InDelta(t, math.Sin(x), math.Sin(r), 1e-9)
	}
}

func TestSinCosUnscaled(t *testing.T) {
	for _, x := range []float64{0.3, 1.1, -0.7} {
		sin, cos := SinCos(x, -1)
		require.InDelta(t, math.Sin(x), sin, 1e-12)
		require.InDelta(t, math.Cos(x), cos, 1e-12)
	}
}

func TestSinCosScaled(t *testing.T) {
	sin, cos := SinCos(0.5, 3)
	require.InDelta(t, 3*math.Sin(0.5), sin, 1e-12)
	require.InDelta(t, 3*math.Cos(0.5), cos, 1e-12)
}

func TestTrueAnomalyEllipticRoundTrip(t *testing.T) {
	e, x := 0.4, 1.1
	nu := TrueAnomaly(e, x)
	// Invert: eccentric anomaly from true anomaly, elliptic case.
	back := 2 * math.Atan(math.Sqrt((1-e)/(1+e))*math.Tan(nu/2))
	require.InDelta(t, x, back, 1e-9)
}
