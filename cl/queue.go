package cl

import (
	"sync"
	"sync/atomic"
)

var queueIDs atomic.Uint64

type task struct {
	label string
	fn    func() error
	done  chan struct{} // non-nil marks a Finish barrier
}

// Queue is a FIFO command queue served by one worker goroutine. Enqueued
// operations run asynchronously in submission order; errors are collected
// and reported by the next Finish.
type Queue struct {
	ctx    *Context
	id     uint64
	tasks  chan task
	exited chan struct{}

	mu     sync.Mutex // guards closed and sends on tasks
	closed bool

	errMu sync.Mutex
	err   error
}

const queueDepth = 64

func newQueue(ctx *Context) *Queue {
	q := &Queue{
		ctx:    ctx,
		id:     queueIDs.Add(1),
		tasks:  make(chan task, queueDepth),
		exited: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.exited)

	for t := range q.tasks {
		if t.done != nil {
			close(t.done)
			continue
		}

		if err := t.fn(); err != nil {
			q.errMu.Lock()
			if q.err == nil {
				q.err = err
			}
			q.errMu.Unlock()
		}
	}
}

// Context returns the context this queue executes against.
func (q *Queue) Context() *Context {
	return q.ctx
}

// ID returns the queue's trace identifier.
func (q *Queue) ID() uint64 {
	return q.id
}

// Enqueue submits an operation and returns once it is queued, not once it
// has run. fn executes on the worker goroutine; a non-nil result is held
// for the next Finish.
func (q *Queue) Enqueue(label string, fn func() error) error {
	return q.submit(task{label: label, fn: fn})
}

// EnqueueWrite submits a host-to-device transfer covering the whole buffer.
// The caller must not mutate src before the transfer completes.
func (q *Queue) EnqueueWrite(dst *Buffer, src []byte) error {
	if dst == nil {
		return ErrBufferReleased
	}
	if len(src) != dst.Size() {
		return ErrSizeMismatch
	}

	return q.Enqueue("write", func() error {
		mem, err := dst.Bytes()
		if err != nil {
			return err
		}
		copy(mem, src)
		return nil
	})
}

// EnqueueRead submits a device-to-host transfer covering the whole buffer.
// dst is valid only after the next Finish.
func (q *Queue) EnqueueRead(dst []byte, src *Buffer) error {
	if src == nil {
		return ErrBufferReleased
	}
	if len(dst) != src.Size() {
		return ErrSizeMismatch
	}

	return q.Enqueue("read", func() error {
		mem, err := src.Bytes()
		if err != nil {
			return err
		}
		copy(dst, mem)
		return nil
	})
}

// submit sends under the lock so Close never races the channel send.
func (q *Queue) submit(t task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	if l := q.ctx.log(); l != nil && t.done == nil {
		l.Debug("cl: enqueue", "queue", q.id, "op", t.label)
	}

	q.tasks <- t

	return nil
}

// Finish blocks until every previously enqueued operation has run, then
// returns the first asynchronous error recorded since the previous Finish.
func (q *Queue) Finish() error {
	barrier := task{done: make(chan struct{})}
	if err := q.submit(barrier); err != nil {
		return err
	}

	<-barrier.done

	q.errMu.Lock()
	err := q.err
	q.err = nil
	q.errMu.Unlock()

	return err
}

// Close drains the queue and stops the worker. Idempotent; enqueues after
// Close fail with ErrQueueClosed.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.tasks)
	q.mu.Unlock()

	<-q.exited
	return nil
}
