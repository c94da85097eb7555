package clfft

import (
	"sync"

	"github.com/cwbudde/algo-clfft/cl"
	"github.com/cwbudde/algo-clfft/vec"
)

// FFT is a configured transform plan bound to the process-wide engine.
//
// An FFT assumes its vectors are densely packed row-major interleaved
// complex data with lengths[0] the fastest-varying dimension. Only a single
// device queue is supported at execute time; all queues passed to New are
// assumed to share queues[0]'s context.
//
// Execute calls are safe to issue concurrently with each other but not with
// Close.
type FFT struct {
	queues  []*cl.Queue
	lengths []int
	total   int
	dir     Direction
	engine  Engine
	plan    PlanHandle

	mu     sync.Mutex
	closed bool
}

// New creates an FFT for 1-3 dimensional lengths on the given queues with a
// fixed direction. It acquires the process-wide engine (running engine setup
// for the first live plan), creates the plan on queues[0]'s context and
// configures single precision and interleaved layout.
//
// Length factor support (powers of 2, 3 and 5) is the engine's to enforce;
// lengths pass through unchanged. If any engine step fails the plan is
// destroyed and the engine reference released before the error is returned,
// so a failed New never leaks engine state.
func New(queues []*cl.Queue, lengths []int, dir Direction) (*FFT, error) {
	if len(queues) == 0 {
		return nil, ErrNoQueue
	}
	for _, q := range queues {
		if q == nil {
			return nil, ErrNoQueue
		}
	}
	if len(lengths) < 1 || len(lengths) > 3 {
		return nil, ErrInvalidDimension
	}

	total := 1
	for _, n := range lengths {
		if n < 1 {
			return nil, ErrInvalidLength
		}
		total *= n
	}

	eng, err := account.acquire()
	if err != nil {
		return nil, err
	}

	plan, st := eng.CreatePlan(queues[0].Context(), lengths)
	if st != StatusSuccess {
		_ = account.release()
		return nil, &EngineError{Status: st}
	}

	if st := eng.SetPrecision(plan, PrecisionSingle); st != StatusSuccess {
		_ = eng.DestroyPlan(plan)
		_ = account.release()
		return nil, &EngineError{Status: st}
	}

	if st := eng.SetLayout(plan, LayoutInterleaved, LayoutInterleaved); st != StatusSuccess {
		_ = eng.DestroyPlan(plan)
		_ = account.release()
		return nil, &EngineError{Status: st}
	}

	return &FFT{
		queues:  append([]*cl.Queue(nil), queues...),
		lengths: append([]int(nil), lengths...),
		total:   total,
		dir:     dir,
		engine:  eng,
		plan:    plan,
	}, nil
}

// Dim returns the transform dimensionality.
func (f *FFT) Dim() int {
	return len(f.lengths)
}

// Lengths returns a copy of the per-dimension lengths.
func (f *FFT) Lengths() []int {
	return append([]int(nil), f.lengths...)
}

// Len returns the total number of complex samples per transform.
func (f *FFT) Len() int {
	return f.total
}

// Direction returns the direction fixed at construction.
func (f *FFT) Direction() Direction {
	return f.dir
}

// Execute configures the plan's result location from buffer identity (the
// same device buffer for dst and src selects in-place) and enqueues the
// transform on the configured queue with no wait list and no completion
// event. It returns once the transform is enqueued; completion ordering is
// the queue's.
//
// ModeAccumulate and SignNegated are not implemented by this engine family
// and are rejected with *UnsupportedError before any engine call, as is a
// plan configured with more than one queue (split buffers unsupported).
func (f *FFT) Execute(dst, src *vec.Vector, mode Mode, sign Sign) error {
	if f == nil {
		return ErrPlanDestroyed
	}

	f.mu.Lock()
	closed := f.closed
	f.mu.Unlock()

	if closed {
		return ErrPlanDestroyed
	}

	if dst == nil || src == nil {
		return ErrNilVector
	}
	if sign == SignNegated {
		return &UnsupportedError{Feature: "negated transform sign"}
	}
	if mode == ModeAccumulate {
		return &UnsupportedError{Feature: "accumulating assignment"}
	}
	if len(f.queues) != 1 {
		return &UnsupportedError{Feature: "split-buffer execution on multiple queues"}
	}
	if dst.Len() != f.total || src.Len() != f.total {
		return ErrLengthMismatch
	}

	loc := ResultOutOfPlace
	if dst.Buffer() == src.Buffer() {
		loc = ResultInPlace
	}

	if st := f.engine.SetResultLocation(f.plan, loc); st != StatusSuccess {
		return &EngineError{Status: st}
	}

	if st := f.engine.EnqueueTransform(f.plan, f.dir, f.queues, src.Buffer(), dst.Buffer()); st != StatusSuccess {
		return &EngineError{Status: st}
	}

	return nil
}

// Transform enqueues an out-of-place (or, with dst == src, in-place)
// transform overwriting dst.
func (f *FFT) Transform(dst, src *vec.Vector) error {
	return f.Execute(dst, src, ModeOverwrite, SignPositive)
}

// TransformInPlace enqueues an in-place transform of v.
func (f *FFT) TransformInPlace(v *vec.Vector) error {
	return f.Transform(v, v)
}

// Close destroys the plan and releases the process-wide engine reference,
// tearing the engine down if this was the last live plan. Close is
// idempotent; the reference is released exactly once.
func (f *FFT) Close() error {
	if f == nil {
		return nil
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	f.mu.Unlock()

	var firstErr error

	if st := f.engine.DestroyPlan(f.plan); st != StatusSuccess {
		firstErr = &EngineError{Status: st}
	}

	if err := account.release(); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}
