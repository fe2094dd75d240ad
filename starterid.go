package kepler

import (
	"fmt"

	"github.com/akobaz/libkes/internal/starter"
)

// StarterID names one of the closed-form starter functions. None marks
// invalid/unset input; TotalStarter is the iteration terminator.
type StarterID int

const (
	// None marks an unset or invalid starter identifier.
	None StarterID = iota - 1

	// S0 through S14 name the elliptic starter catalog, in the order and
	// with the asymptotic orders documented on each function in
	// internal/starter.
	S0
	S1
	S2
	S3
	S4
	S5
	S6
	S7
	S8
	S9
	S10
	S11
	S12
	S13
	S14

	// TotalStarter is the number of defined starter identifiers and not itself
	// a valid one.
	TotalStarter
)

var starterNames = [TotalStarter]string{
	"S0", "S1", "S2", "S3", "S4", "S5", "S6", "S7",
	"S8", "S9", "S10", "S11", "S12", "S13", "S14",
}

var starterDescriptions = [TotalStarter]string{
	"constant pi (order e^0)",
	"mean anomaly (order e^1)",
	"first-order sine correction (order e^2)",
	"second-order sine/cosine correction (order e^3)",
	"mean anomaly plus eccentricity (order e^1)",
	"rational sine correction (order e^3)",
	"linear blend toward pi (order e^1)",
	"minimum of three order-e^1 starters",
	"S3 with a quartic pi-ward correction (order e^3)",
	"normalized sine correction (order e^4)",
	"Ng's cubic (order e^0)",
	"Lagrange-reversion quartic expansion (order e^4)",
	"Odell-Gooding rational blend (order e^1)",
	"repeated fixed-point seed (order e^6)",
	"cube-root blended correction (order e^1)",
}

// String returns the stable identifier name, e.g. "S7". Values outside
// the taxonomy (including None) format as "StarterID(n)".
func (id StarterID) String() string {
	if id >= 0 && id < TotalStarter {
		return starterNames[id]
	}
	return fmt.Sprintf("StarterID(%d)", int(id))
}

// starterCatalog maps each StarterID to its internal/starter
// implementation, in lock step with starter.Catalog.
var starterCatalog = starter.Catalog

// Starter evaluates the named starter at (e, M), returning BadStarter if
// tag is out of range. M is expected already reduced into [0, pi].
func Starter(e, M float64, tag StarterID) (float64, Status) {
	if tag < 0 || tag >= TotalStarter {
		return 0, BadStarter
	}
	return starterCatalog[tag](e, M), NoError
}

// ShowStarter returns a human-readable description of a starter
// identifier.
func ShowStarter(tag StarterID) string {
	if tag < 0 || tag >= TotalStarter {
		return fmt.Sprintf("%s: unknown starter", tag.String())
	}
	return fmt.Sprintf("%s: %s", tag.String(), starterDescriptions[tag])
}
