package clfft

import (
	"sync"

	"github.com/cwbudde/algo-clfft/cl"
)

// Engine is the external FFT engine ABI. Every call reports a Status; the
// adapter turns any non-success status into an *EngineError.
//
// Engines in this family implement single-precision complex-to-complex
// transforms with interleaved layout; other precisions and layouts are the
// engine's to reject.
type Engine interface {
	Info() EngineInfo
	Available() bool
	Setup() Status
	Teardown() Status
	CreatePlan(ctx *cl.Context, lengths []int) (PlanHandle, Status)
	SetPrecision(h PlanHandle, p Precision) Status
	SetLayout(h PlanHandle, in, out Layout) Status
	SetResultLocation(h PlanHandle, loc Result) Status
	EnqueueTransform(h PlanHandle, dir Direction, queues []*cl.Queue, in, out *cl.Buffer) Status
	DestroyPlan(h PlanHandle) Status
}

// EngineInfo describes an engine implementation.
type EngineInfo struct {
	Name        string
	Version     string
	Description string
}

var (
	engineMu sync.RWMutex
	engine   Engine
)

// RegisterEngine registers an FFT engine. Passing nil clears the engine.
// Re-registering while plans are live takes effect once the last live plan
// is closed; the plans themselves stay bound to the engine they were
// created with.
func RegisterEngine(e Engine) {
	engineMu.Lock()
	engine = e
	engineMu.Unlock()
}

// CurrentEngineInfo reports the currently registered engine, if any.
func CurrentEngineInfo() (EngineInfo, bool) {
	e := getEngine()
	if e == nil {
		return EngineInfo{}, false
	}
	return e.Info(), true
}

func getEngine() Engine {
	engineMu.RLock()
	e := engine
	engineMu.RUnlock()
	return e
}
