package clfft

import "github.com/cwbudde/algo-clfft/vec"

// Expr is a deferred transform of one input vector. Building it performs no
// engine work; the transform is enqueued when the expression is assigned to
// a destination. An Expr borrows both the FFT and the input for the single
// assignment that consumes it.
type Expr struct {
	f     *FFT
	input *vec.Vector
}

// Apply builds a deferred transform expression for x, the library
// counterpart of writing out = fft(in).
func (f *FFT) Apply(x *vec.Vector) *Expr {
	return &Expr{f: f, input: x}
}

// AssignTo enqueues the transform overwriting dst.
func (e *Expr) AssignTo(dst *vec.Vector) error {
	return e.f.Execute(dst, e.input, ModeOverwrite, SignPositive)
}

// AccumulateInto maps the host library's additive-assignment path. The
// engine family does not implement accumulation, so this is rejected with
// *UnsupportedError without enqueueing anything.
func (e *Expr) AccumulateInto(dst *vec.Vector) error {
	return e.f.Execute(dst, e.input, ModeAccumulate, SignPositive)
}
