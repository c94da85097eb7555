// Package hostcpu reports the SIMD capabilities of the host processor.
//
// The simulated device runtime executes on the host CPU and uses this
// report to describe the device it presents. Nothing here influences
// transform results.
package hostcpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the host CPU capabilities surfaced in the simulated
// device description.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// Detect reports the available CPU features for the current process.
func Detect() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String returns a compact summary such as "amd64/sse2+avx2".
func (f Features) String() string {
	caps := make([]string, 0, 5)

	if f.HasSSE2 {
		caps = append(caps, "sse2")
	}

	if f.HasAVX {
		caps = append(caps, "avx")
	}

	if f.HasAVX2 {
		caps = append(caps, "avx2")
	}

	if f.HasAVX512 {
		caps = append(caps, "avx512")
	}

	if f.HasNEON {
		caps = append(caps, "neon")
	}

	if len(caps) == 0 {
		return f.Architecture
	}

	return f.Architecture + "/" + strings.Join(caps, "+")
}
