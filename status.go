package clfft

// Status is an engine status code. Zero means success; every other value is
// surfaced by the adapter as an *EngineError.
type Status int32

const (
	StatusSuccess Status = iota
	StatusNotInitialized
	StatusNotAvailable
	StatusInvalidArgument
	StatusInvalidPlan
	StatusInvalidDimension
	StatusUnsupportedLength
	StatusUnsupportedPrecision
	StatusUnsupportedLayout
	StatusInvalidBuffer
	StatusInvalidQueue
	StatusOutOfResources
)

var statusMessages = [...]string{
	"success",
	"engine not initialized",
	"engine not available",
	"invalid argument",
	"invalid plan handle",
	"invalid transform dimension",
	"unsupported transform length",
	"unsupported precision",
	"unsupported memory layout",
	"invalid buffer",
	"invalid queue",
	"out of resources",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusMessages) {
		return "unknown status"
	}
	return statusMessages[s]
}

// Direction selects the transform sign. The values follow the engine
// convention (forward -1, backward +1) and are fixed at plan construction.
type Direction int

const (
	Forward Direction = -1
	Inverse Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "invalid"
	}
}

// Precision is the working precision of a plan. Engines in this family
// accept only PrecisionSingle.
type Precision uint8

const (
	PrecisionSingle Precision = iota
	PrecisionDouble
)

// Layout describes how complex samples are stored in a device buffer.
// Engines in this family accept only LayoutInterleaved.
type Layout uint8

const (
	// LayoutInterleaved stores each sample as adjacent real/imag components.
	LayoutInterleaved Layout = iota
	// LayoutPlanar stores all real components followed by all imag components.
	LayoutPlanar
)

// Result selects whether a transform writes over its input buffer.
type Result uint8

const (
	ResultOutOfPlace Result = iota
	ResultInPlace
)

func (r Result) String() string {
	if r == ResultInPlace {
		return "in-place"
	}
	return "out-of-place"
}

// Mode selects how an execute call combines with the destination.
type Mode uint8

const (
	// ModeOverwrite replaces the destination contents.
	ModeOverwrite Mode = iota
	// ModeAccumulate adds into the destination. Not implemented; execute
	// rejects it before any engine call.
	ModeAccumulate
)

// Sign optionally negates the transform relative to the plan direction.
type Sign uint8

const (
	SignPositive Sign = iota
	// SignNegated is not implemented; execute rejects it before any engine call.
	SignNegated
)

// PlanHandle is an opaque engine-owned plan identifier. Zero is never a
// valid handle.
type PlanHandle uint64
