package clfft

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-clfft/cl"
	"github.com/cwbudde/algo-clfft/vec"
)

// Shared test doubles and fixtures for the adapter tests.

type enqueueCall struct {
	plan   PlanHandle
	dir    Direction
	queues []*cl.Queue
	in     *cl.Buffer
	out    *cl.Buffer
}

type createCall struct {
	ctx     *cl.Context
	lengths []int
}

// recordEngine records every ABI call and can be told to fail a given step
// with a chosen status. The zero value is available and succeeds everywhere.
type recordEngine struct {
	mu sync.Mutex

	unavailable bool

	failSetup     Status
	failCreate    Status
	failPrecision Status
	failLayout    Status
	failLocation  Status
	failEnqueue   Status

	setups    int
	teardowns int

	next      PlanHandle
	live      map[PlanHandle]bool
	creates   []createCall
	locations []Result
	enqueues  []enqueueCall
	destroys  []PlanHandle
}

var _ Engine = (*recordEngine)(nil)

func (e *recordEngine) Info() EngineInfo {
	return EngineInfo{Name: "record", Version: "test"}
}

func (e *recordEngine) Available() bool {
	return !e.unavailable
}

func (e *recordEngine) Setup() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.failSetup != StatusSuccess {
		return e.failSetup
	}

	e.setups++

	return StatusSuccess
}

func (e *recordEngine) Teardown() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.teardowns++

	return StatusSuccess
}

func (e *recordEngine) CreatePlan(ctx *cl.Context, lengths []int) (PlanHandle, Status) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.failCreate != StatusSuccess {
		return 0, e.failCreate
	}

	if e.live == nil {
		e.live = make(map[PlanHandle]bool)
	}

	e.next++
	e.live[e.next] = true
	e.creates = append(e.creates, createCall{ctx: ctx, lengths: append([]int(nil), lengths...)})

	return e.next, StatusSuccess
}

func (e *recordEngine) SetPrecision(h PlanHandle, _ Precision) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.live[h] {
		return StatusInvalidPlan
	}

	return e.failPrecision
}

func (e *recordEngine) SetLayout(h PlanHandle, _, _ Layout) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.live[h] {
		return StatusInvalidPlan
	}

	return e.failLayout
}

func (e *recordEngine) SetResultLocation(h PlanHandle, loc Result) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.live[h] {
		return StatusInvalidPlan
	}
	if e.failLocation != StatusSuccess {
		return e.failLocation
	}

	e.locations = append(e.locations, loc)

	return StatusSuccess
}

func (e *recordEngine) EnqueueTransform(h PlanHandle, dir Direction, queues []*cl.Queue, in, out *cl.Buffer) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.live[h] {
		return StatusInvalidPlan
	}
	if e.failEnqueue != StatusSuccess {
		return e.failEnqueue
	}

	e.enqueues = append(e.enqueues, enqueueCall{
		plan:   h,
		dir:    dir,
		queues: queues,
		in:     in,
		out:    out,
	})

	return StatusSuccess
}

func (e *recordEngine) DestroyPlan(h PlanHandle) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.live[h] {
		return StatusInvalidPlan
	}

	delete(e.live, h)
	e.destroys = append(e.destroys, h)

	return StatusSuccess
}

// withEngine registers e for the duration of the test.
func withEngine(t *testing.T, e Engine) {
	t.Helper()

	RegisterEngine(e)
	t.Cleanup(func() { RegisterEngine(nil) })
}

// newTestQueues builds a context with n queues, torn down with the test.
func newTestQueues(t *testing.T, n int) []*cl.Queue {
	t.Helper()

	dev := cl.Platforms()[0].Devices()[0]

	ctx, err := cl.NewContext(dev)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	t.Cleanup(func() { _ = ctx.Release() })

	queues := make([]*cl.Queue, 0, n)
	for i := 0; i < n; i++ {
		q, err := ctx.NewQueue()
		if err != nil {
			t.Fatalf("NewQueue: %v", err)
		}
		t.Cleanup(func() { _ = q.Close() })
		queues = append(queues, q)
	}

	return queues
}

// newTestVector allocates an n-sample vector, closed with the test.
func newTestVector(t *testing.T, queues []*cl.Queue, n int) *vec.Vector {
	t.Helper()

	v, err := vec.New(queues, n)
	if err != nil {
		t.Fatalf("vec.New(%d): %v", n, err)
	}
	t.Cleanup(func() { _ = v.Close() })

	return v
}

// mustNew constructs an FFT and registers its Close with the test.
func mustNew(t *testing.T, queues []*cl.Queue, lengths []int, dir Direction) *FFT {
	t.Helper()

	f, err := New(queues, lengths, dir)
	if err != nil {
		t.Fatalf("New(%v): %v", lengths, err)
	}
	t.Cleanup(func() { _ = f.Close() })

	return f
}
