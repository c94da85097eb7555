// Package vec provides densely packed interleaved-complex single-precision
// device vectors, the buffer abstraction the clfft adapter transforms.
package vec

import (
	stderrors "errors"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-clfft/cl"
	"github.com/cwbudde/algo-clfft/internal/interleave"
)

var (
	// ErrNoQueue is returned when the queue collection is empty or holds a nil queue.
	ErrNoQueue = stderrors.New("vec: no command queue")

	// ErrInvalidLength is returned for non-positive vector lengths.
	ErrInvalidLength = stderrors.New("vec: invalid length")

	// ErrLengthMismatch is returned when a host slice does not match the vector length.
	ErrLengthMismatch = stderrors.New("vec: length mismatch")

	// ErrClosed is returned when using a closed vector.
	ErrClosed = stderrors.New("vec: vector closed")
)

// Vector is a device vector of n complex64 samples. It owns its device
// buffer and borrows its queues from the caller. Transfers run on
// queues[0].
type Vector struct {
	queues []*cl.Queue
	buf    *cl.Buffer
	n      int
	closed bool
}

// New allocates an uninitialized vector of n samples on queues[0]'s context.
func New(queues []*cl.Queue, n int) (*Vector, error) {
	if len(queues) == 0 {
		return nil, ErrNoQueue
	}
	for _, q := range queues {
		if q == nil {
			return nil, ErrNoQueue
		}
	}
	if n < 1 {
		return nil, ErrInvalidLength
	}

	buf, err := queues[0].Context().NewBuffer(interleave.ByteLen(n))
	if err != nil {
		return nil, errors.Wrap(err, "vec: allocate device buffer")
	}

	return &Vector{
		queues: append([]*cl.Queue(nil), queues...),
		buf:    buf,
		n:      n,
	}, nil
}

// NewFromSlice allocates a vector and blocks until data is uploaded.
func NewFromSlice(queues []*cl.Queue, data []complex64) (*Vector, error) {
	v, err := New(queues, len(data))
	if err != nil {
		return nil, err
	}

	if err := v.Write(data); err != nil {
		_ = v.Close()
		return nil, err
	}

	return v, nil
}

// Len returns the number of complex samples.
func (v *Vector) Len() int {
	return v.n
}

// Queues returns the borrowed queue collection.
func (v *Vector) Queues() []*cl.Queue {
	return v.queues
}

// Buffer returns the device buffer handle. Adapter code compares these
// handles by identity to detect in-place transforms.
func (v *Vector) Buffer() *cl.Buffer {
	return v.buf
}

// Write uploads data and blocks until the transfer completes.
func (v *Vector) Write(data []complex64) error {
	if v.closed {
		return ErrClosed
	}
	if len(data) != v.n {
		return ErrLengthMismatch
	}

	raw := make([]byte, interleave.ByteLen(v.n))
	interleave.PutComplex64(raw, data)

	q := v.queues[0]
	if err := q.EnqueueWrite(v.buf, raw); err != nil {
		return errors.Wrap(err, "vec: upload")
	}

	return errors.Wrap(q.Finish(), "vec: upload")
}

// Read downloads the vector into dst and blocks until the transfer completes.
func (v *Vector) Read(dst []complex64) error {
	if v.closed {
		return ErrClosed
	}
	if len(dst) != v.n {
		return ErrLengthMismatch
	}

	raw := make([]byte, interleave.ByteLen(v.n))

	q := v.queues[0]
	if err := q.EnqueueRead(raw, v.buf); err != nil {
		return errors.Wrap(err, "vec: download")
	}
	if err := q.Finish(); err != nil {
		return errors.Wrap(err, "vec: download")
	}

	interleave.GetComplex64(dst, raw)

	return nil
}

// Close releases the device buffer. Idempotent.
func (v *Vector) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	return v.buf.Release()
}
