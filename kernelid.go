package kepler

import "fmt"

// KernelID names one of the solver kernels. NoneKernel marks
// invalid/unset input; TotalKernel is the iteration terminator.
type KernelID int

const (
	// NoneKernel marks an unset or invalid kernel identifier.
	NoneKernel KernelID = iota - 1

	// Bisection through Nijenhuis name the solver kernel catalog.
	Bisection
	Secant
	WegsteinSecant
	FixedPoint
	NewtonRaphson
	Halley
	DanbyBurkardt4
	DanbyBurkardt5
	LaguerreConway
	Mikkola
	Markley
	Nijenhuis

	// TotalKernel is the number of defined kernel identifiers and not
	// itself a valid one.
	TotalKernel
)

var kernelNames = [TotalKernel]string{
	"Bisection", "Secant", "WegsteinSecant", "FixedPoint",
	"NewtonRaphson", "Halley", "DanbyBurkardt4", "DanbyBurkardt5",
	"LaguerreConway", "Mikkola", "Markley", "Nijenhuis",
}

var kernelDescriptions = [TotalKernel]string{
	"bracketing bisection, guaranteed linear convergence",
	"secant update on the same bracket as bisection",
	"damped-secant acceleration of the fixed-point map",
	"plain fixed-point iteration x = M + e*sin(x)",
	"Newton-Raphson polish (Newton-series order 2)",
	"Halley polish (Newton-series order 3)",
	"Danby-Burkardt polish (Newton-series order 4)",
	"Danby-Burkardt polish (Newton-series order 5)",
	"Laguerre-Conway cubic-convergence single-step correction",
	"Mikkola non-iterative cubic seed plus order-5 polish",
	"Markley non-iterative rational seed plus order-5 polish",
	"Nijenhuis region-split composite with depth-3 Newton polish",
}

// String returns the stable identifier name, e.g. "Nijenhuis". Values
// outside the taxonomy (including NoneKernel) format as "KernelID(n)".
func (id KernelID) String() string {
	if id >= 0 && id < TotalKernel {
		return kernelNames[id]
	}
	return fmt.Sprintf("KernelID(%d)", int(id))
}

// ShowSolver returns a human-readable description of a kernel
// identifier.
func ShowSolver(tag KernelID) string {
	if tag < 0 || tag >= TotalKernel {
		return fmt.Sprintf("%s: unknown kernel", tag.String())
	}
	return fmt.Sprintf("%s: %s", tag.String(), kernelDescriptions[tag])
}
