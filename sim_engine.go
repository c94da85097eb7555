package clfft

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-clfft/cl"
	"github.com/cwbudde/algo-clfft/internal/interleave"
	"github.com/cwbudde/algo-clfft/internal/reference"
)

// SimEngine is a host-backed reference engine for development and tests.
// It satisfies the full engine ABI, validates the {2,3,5}-smooth size
// family at plan creation, and runs transforms asynchronously on the target
// queue with the engine-default 1/N inverse scale.
type SimEngine struct {
	mu    sync.Mutex
	setup bool
	next  PlanHandle
	plans map[PlanHandle]*simPlan
}

type simPlan struct {
	ctx      *cl.Context
	lengths  []int
	total    int
	location Result
}

// NewSimEngine returns an engine executing transforms on the host CPU.
func NewSimEngine() *SimEngine {
	return &SimEngine{plans: make(map[PlanHandle]*simPlan)}
}

// RegisterSimEngine registers the simulated engine as the active engine.
func RegisterSimEngine() {
	RegisterEngine(NewSimEngine())
}

func (e *SimEngine) Info() EngineInfo {
	return EngineInfo{
		Name:        "sim",
		Version:     "0.1",
		Description: "host-backed reference FFT engine",
	}
}

func (e *SimEngine) Available() bool {
	return true
}

func (e *SimEngine) Setup() Status {
	e.mu.Lock()
	e.setup = true
	e.mu.Unlock()
	return StatusSuccess
}

func (e *SimEngine) Teardown() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.setup {
		return StatusNotInitialized
	}

	e.setup = false
	e.plans = make(map[PlanHandle]*simPlan)

	return StatusSuccess
}

func (e *SimEngine) CreatePlan(ctx *cl.Context, lengths []int) (PlanHandle, Status) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.setup {
		return 0, StatusNotInitialized
	}
	if ctx == nil {
		return 0, StatusInvalidArgument
	}
	if len(lengths) < 1 || len(lengths) > 3 {
		return 0, StatusInvalidDimension
	}

	total := 1
	for _, n := range lengths {
		if !reference.Smooth235(n) {
			return 0, StatusUnsupportedLength
		}
		total *= n
	}

	e.next++
	e.plans[e.next] = &simPlan{
		ctx:     ctx,
		lengths: append([]int(nil), lengths...),
		total:   total,
	}

	return e.next, StatusSuccess
}

func (e *SimEngine) SetPrecision(h PlanHandle, p Precision) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.plans[h]; !ok {
		return StatusInvalidPlan
	}
	if p != PrecisionSingle {
		return StatusUnsupportedPrecision
	}

	return StatusSuccess
}

func (e *SimEngine) SetLayout(h PlanHandle, in, out Layout) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.plans[h]; !ok {
		return StatusInvalidPlan
	}
	if in != LayoutInterleaved || out != LayoutInterleaved {
		return StatusUnsupportedLayout
	}

	return StatusSuccess
}

func (e *SimEngine) SetResultLocation(h PlanHandle, loc Result) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.plans[h]
	if !ok {
		return StatusInvalidPlan
	}

	p.location = loc

	return StatusSuccess
}

func (e *SimEngine) EnqueueTransform(h PlanHandle, dir Direction, queues []*cl.Queue, in, out *cl.Buffer) Status {
	e.mu.Lock()
	p, ok := e.plans[h]
	if !ok {
		e.mu.Unlock()
		return StatusInvalidPlan
	}

	lengths := append([]int(nil), p.lengths...)
	total := p.total
	location := p.location
	e.mu.Unlock()

	if dir != Forward && dir != Inverse {
		return StatusInvalidArgument
	}
	if len(queues) == 0 || queues[0] == nil {
		return StatusInvalidQueue
	}
	if in == nil || out == nil {
		return StatusInvalidBuffer
	}
	if in.Size() < interleave.ByteLen(total) || out.Size() < interleave.ByteLen(total) {
		return StatusInvalidBuffer
	}

	// Result location must agree with buffer identity.
	if (in == out) != (location == ResultInPlace) {
		return StatusInvalidBuffer
	}

	err := queues[0].Enqueue(fmt.Sprintf("clfft %s %v", dir, lengths), func() error {
		src, err := in.Bytes()
		if err != nil {
			return err
		}
		dst, err := out.Bytes()
		if err != nil {
			return err
		}

		work := make([]complex128, total)
		interleave.GetComplex128(work, src)

		if dir == Forward {
			reference.Forward(work, lengths)
		} else {
			reference.Inverse(work, lengths)
		}

		interleave.PutComplex128(dst, work)

		return nil
	})
	if err != nil {
		return StatusInvalidQueue
	}

	return StatusSuccess
}

func (e *SimEngine) DestroyPlan(h PlanHandle) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.plans[h]; !ok {
		return StatusInvalidPlan
	}

	delete(e.plans, h)

	return StatusSuccess
}
