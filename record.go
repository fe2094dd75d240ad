package kepler

import "github.com/soniakeys/unit"

// Default tolerances and iteration budget, used both by NewRecord and by
// Solve's clamping step when a caller-populated Record carries an
// out-of-range value.
const (
	DefaultTolF    = 1e-15
	DefaultTolX    = 1e-15
	DefaultMaxIter = 100

	// epsilonMin is the lower bound tolf/tolx must clear; it equals the
	// default tolerance, so the defaults themselves sit exactly at the
	// boundary.
	epsilonMin = 1e-15
)

// Record is the caller-facing configuration-in, diagnostics-out value
// passed by reference to Solve. It owns no heap resources and may be
// zero-valued (Solve substitutes defaults for zero or out-of-range
// fields) or built with NewRecord.
//
// A single Record must not be shared across goroutines; Solve may be
// called concurrently on distinct Records without synchronization.
type Record struct {
	TolF    float64
	TolX    float64
	MaxIter int

	// Result and Starter are angle quantities (eccentric anomaly), typed
	// as unit.Angle rather than a bare float64 at this caller-facing
	// boundary, following soniakeys/unit's use throughout the teacher
	// corpus (e.g. parabolic.Elements.AnomalyDistance's unit.Angle
	// return) to tag radian values by what they mean, not just their
	// representation.
	Result  unit.Angle
	Starter unit.Angle

	ErrDF      float64
	ErrDX      float64
	Iterations int

	NbrSinEval int
	NbrCosEval int
	NbrFktEval int

	// Trace, if non-nil, receives one diagnostic line from each Solve
	// call that runs a kernel (kernel, starter, result, iteration count
	// and final residuals); individual iterations are not traced. Off by
	// default (nil behaves as NopTracer).
	Trace Tracer

	// CountEvals turns on the NbrSinEval/NbrCosEval/NbrFktEval fields
	// as a run-time option, replacing the compile-time flag of a
	// C-style implementation. Off by default. When set, Solve writes the
	// kernel's iteration count into all three fields; sine, cosine and
	// function evaluations are not counted individually.
	CountEvals bool
}

// Option configures a Record built by NewRecord.
type Option func(*Record)

// WithTolF sets the convergence target on |f(x)|. Values outside
// [epsilonMin, 1) are left for Solve's clamping step to replace with
// DefaultTolF.
func WithTolF(tolf float64) Option {
	return func(r *Record) { r.TolF = tolf }
}

// WithTolX sets the convergence target on the successive-iterate gap.
// Values outside [epsilonMin, 1) are left for Solve's clamping step to
// replace with DefaultTolX.
func WithTolX(tolx float64) Option {
	return func(r *Record) { r.TolX = tolx }
}

// WithMaxIter sets the iteration budget. Values outside [1, 10*
// DefaultMaxIter] are left for Solve's clamping step to replace with
// DefaultMaxIter.
func WithMaxIter(maxiter int) Option {
	return func(r *Record) { r.MaxIter = maxiter }
}

// NewRecord builds a Record from the recognized options, leaving
// unspecified fields at their defaults. The options set {TolF, TolX,
// MaxIter} described in §6; result and diagnostic fields always start
// zero-valued.
func NewRecord(opts ...Option) *Record {
	r := &Record{
		TolF:    DefaultTolF,
		TolX:    DefaultTolX,
		MaxIter: DefaultMaxIter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetTolF sets the convergence target on |f(x)|, enforcing tolf in
// [epsilonMin, 1); an out-of-range value leaves TolF unchanged and
// reports BadTolerance.
func (r *Record) SetTolF(tolf float64) Status {
	if !(tolf >= epsilonMin && tolf < 1) {
		return BadTolerance
	}
	r.TolF = tolf
	return NoError
}

// SetTolX sets the convergence target on the successive-iterate gap,
// enforcing tolx in [epsilonMin, 1); an out-of-range value leaves TolX
// unchanged and reports BadTolerance.
func (r *Record) SetTolX(tolx float64) Status {
	if !(tolx >= epsilonMin && tolx < 1) {
		return BadTolerance
	}
	r.TolX = tolx
	return NoError
}

// SetMaxIter sets the iteration budget, enforcing maxiter in
// [1, 10*DefaultMaxIter]; an out-of-range value leaves MaxIter
// unchanged and reports BadValue, per spec.md §7's distinction between
// a tolerance-specific failure (BadTolerance) and any other
// out-of-range scalar setter (BadValue).
func (r *Record) SetMaxIter(maxiter int) Status {
	if !(maxiter >= 1 && maxiter <= 10*DefaultMaxIter) {
		return BadValue
	}
	r.MaxIter = maxiter
	return NoError
}

// clamp validates tolf, tolx, and maxiter against their predicates,
// replacing any invalid value with its default. It reports true if any
// field was replaced, so a caller that wants the clamp warning can
// observe it; Solve itself ignores the return value, per the
// documented behavior that clamp warnings are currently not surfaced
// through Status.
func (r *Record) clamp() bool {
	warned := false
	// The valid interval is closed at epsilonMin: epsilonMin equals the
	// default tolerance, so an open lower bound would reject the
	// default's own value.
	if !(r.TolF >= epsilonMin && r.TolF < 1) {
		r.TolF = DefaultTolF
		warned = true
	}
	if !(r.TolX >= epsilonMin && r.TolX < 1) {
		r.TolX = DefaultTolX
		warned = true
	}
	if !(r.MaxIter >= 1 && r.MaxIter <= 10*DefaultMaxIter) {
		r.MaxIter = DefaultMaxIter
		warned = true
	}
	return warned
}
