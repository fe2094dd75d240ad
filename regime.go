package kepler

import (
	"fmt"
	"math"
)

// epsilonC is the half-width of the neighborhood of e=1 classified as
// Parabolic. This is a design choice, not a derived quantity: Meeus and
// most closed-form starters below lose accuracy long before floating
// point precision does, so the boundary is set generously rather than at
// the smallest value that would still be numerically distinguishable.
const epsilonC = 1e-10

// Regime classifies an eccentricity into the shape of conic it describes.
type Regime int

const (
	// Invalid marks a non-finite or negative eccentricity.
	Invalid Regime = iota
	// Circular is 0 <= e <= epsilonC.
	Circular
	// Elliptic is epsilonC < e < 1-epsilonC.
	Elliptic
	// Parabolic is |e-1| <= epsilonC.
	Parabolic
	// Hyperbolic is e > 1+epsilonC.
	Hyperbolic

	// regimeTotal is a terminator for iteration, not a valid regime.
	regimeTotal
)

var regimeNames = [regimeTotal]string{
	"Invalid", "Circular", "Elliptic", "Parabolic", "Hyperbolic",
}

// String returns the regime's stable name.
func (r Regime) String() string {
	if r >= 0 && r < regimeTotal {
		return regimeNames[r]
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}

// Classify reports the eccentricity regime of e and a status that is
// NoError unless the regime is Invalid.
func Classify(e float64) (Regime, Status) {
	if !isFinite(e) || e < 0 {
		return Invalid, BadEccentricity
	}
	switch {
	case e <= epsilonC:
		return Circular, NoError
	case e < 1-epsilonC:
		return Elliptic, NoError
	case e <= 1+epsilonC:
		return Parabolic, NoError
	default:
		return Hyperbolic, NoError
	}
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
