// Copyright 2013 Sonia Keys
// Copyright 2026 The libkes Authors
// License MIT: http://www.opensource.org/licenses/MIT

// Package kepler solves Kepler's Equation: the transcendental relation
// between mean anomaly M and eccentric anomaly E for a body in Keplerian
// orbit.
//
// In the elliptic case the equation is E - e·sin E = M. A family of
// closed-form starter functions (S0 through S14, see package
// internal/starter) supplies a first approximation, and a family of
// iteration kernels (see package internal/kernel) refines it to a
// caller-specified tolerance: bracketing methods (bisection, secant,
// Wegstein), classic iteration (fixed-point, Newton-Raphson, Halley,
// Danby-Burkardt orders 4 and 5, Laguerre-Conway), and non-iterative
// composite methods (Mikkola, Markley, Nijenhuis) that pair a cubic or
// quintic analytic seed with a single high-order polish.
//
// Solve is the primary entry point: it validates e and M, classifies the
// eccentricity regime, reduces M into a canonical interval, dispatches to
// the chosen starter and kernel, and restores any symmetry it applied
// along the way. The hyperbolic and parabolic regimes are classified but
// not solved by Solve; package barker solves Barker's Equation (the
// parabolic case) directly, and the bare equation evaluators for all
// three regimes (KeqElliptic, KeqHyperbolic, KeqParabolic) are exported
// for callers who want to build their own kernel.
//
// The library is purely computational and holds no state beyond the
// caller's own Record: every exported function is safe for concurrent use
// as long as distinct goroutines do not share a single Record.
package kepler
