//go:build native

package clfft

import "github.com/cwbudde/algo-clfft/cl"

// NativeEngine is a stub for the vendor FFT library binding, enabled with
// the "native" build tag. It does not provide a working implementation yet.
type NativeEngine struct{}

func (e *NativeEngine) Info() EngineInfo {
	return EngineInfo{
		Name:        "native",
		Version:     "stub",
		Description: "vendor FFT engine stub (no implementation)",
	}
}

func (e *NativeEngine) Available() bool {
	return false
}

func (e *NativeEngine) Setup() Status {
	return StatusNotAvailable
}

func (e *NativeEngine) Teardown() Status {
	return StatusNotAvailable
}

func (e *NativeEngine) CreatePlan(_ *cl.Context, _ []int) (PlanHandle, Status) {
	return 0, StatusNotAvailable
}

func (e *NativeEngine) SetPrecision(_ PlanHandle, _ Precision) Status {
	return StatusNotAvailable
}

func (e *NativeEngine) SetLayout(_ PlanHandle, _, _ Layout) Status {
	return StatusNotAvailable
}

func (e *NativeEngine) SetResultLocation(_ PlanHandle, _ Result) Status {
	return StatusNotAvailable
}

func (e *NativeEngine) EnqueueTransform(_ PlanHandle, _ Direction, _ []*cl.Queue, _, _ *cl.Buffer) Status {
	return StatusNotAvailable
}

func (e *NativeEngine) DestroyPlan(_ PlanHandle) Status {
	return StatusNotAvailable
}

// RegisterNativeEngine registers the native engine stub.
func RegisterNativeEngine() {
	RegisterEngine(&NativeEngine{})
}
