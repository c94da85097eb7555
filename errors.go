package clfft

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by plan construction and execution.
var (
	// ErrNoEngine is returned when no FFT engine is registered.
	ErrNoEngine = errors.New("clfft: no engine registered")

	// ErrEngineUnavailable is returned when the registered engine reports
	// it cannot run on the current system.
	ErrEngineUnavailable = errors.New("clfft: engine unavailable")

	// ErrNoQueue is returned when the queue collection is empty or holds a nil queue.
	ErrNoQueue = errors.New("clfft: no command queue")

	// ErrInvalidDimension is returned when the number of lengths is not 1, 2 or 3.
	ErrInvalidDimension = errors.New("clfft: dimension count must be 1-3")

	// ErrInvalidLength is returned when a transform length is not positive.
	ErrInvalidLength = errors.New("clfft: invalid transform length")

	// ErrLengthMismatch is returned when a vector does not match the plan's
	// element count.
	ErrLengthMismatch = errors.New("clfft: vector length mismatch")

	// ErrNilVector is returned when an execute argument is nil.
	ErrNilVector = errors.New("clfft: nil vector")

	// ErrPlanDestroyed is returned when executing on a closed FFT.
	ErrPlanDestroyed = errors.New("clfft: plan destroyed")
)

// engineTag names the engine family in engine error messages.
const engineTag = "AMD FFT"

// EngineError wraps a non-success status returned by the external engine.
type EngineError struct {
	Status Status
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("clfft: %s: %s (status %d)", engineTag, e.Status, int32(e.Status))
}

// UnsupportedError reports a requested configuration the engine family does
// not implement (accumulating assignment, negated sign, split buffers).
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return "clfft: unsupported: " + e.Feature
}
