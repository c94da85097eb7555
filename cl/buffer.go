package cl

import (
	"sync"
	"sync/atomic"
)

var bufferIDs atomic.Uint64

// Buffer is a fixed-size region of simulated device memory. Buffers are
// compared by pointer identity; the numeric ID exists for traces only.
type Buffer struct {
	ctx  *Context
	id   uint64
	data []byte

	mu       sync.Mutex
	released bool
}

func newBuffer(ctx *Context, size int) *Buffer {
	return &Buffer{
		ctx:  ctx,
		id:   bufferIDs.Add(1),
		data: make([]byte, size),
	}
}

// ID returns the buffer's trace identifier.
func (b *Buffer) ID() uint64 {
	return b.id
}

// Context returns the owning context.
func (b *Buffer) Context() *Context {
	return b.ctx
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Bytes exposes the device view of the memory for engine implementations.
// Accesses must be ordered through a queue; the runtime does not arbitrate
// concurrent device-side access, matching real device memory.
func (b *Buffer) Bytes() ([]byte, error) {
	b.mu.Lock()
	released := b.released
	b.mu.Unlock()

	if released {
		return nil, ErrBufferReleased
	}

	return b.data, nil
}

// Release frees the simulated memory. Idempotent; any later access fails
// with ErrBufferReleased.
func (b *Buffer) Release() error {
	b.mu.Lock()
	b.released = true
	b.mu.Unlock()
	return nil
}
