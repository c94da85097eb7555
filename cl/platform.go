package cl

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-clfft/internal/hostcpu"
)

// Platform groups the devices of one runtime implementation. The simulation
// exposes a single platform backed by the host process.
type Platform struct {
	Name    string
	Vendor  string
	Version string

	devices []*Device
}

// Device describes one compute device on a platform.
type Device struct {
	Name     string
	Vendor   string
	Version  string
	UUID     uuid.UUID
	Features hostcpu.Features
}

func (d *Device) String() string {
	return fmt.Sprintf("%s (%s, %s)", d.Name, d.Vendor, d.Features)
}

var (
	platformOnce sync.Once
	platforms    []*Platform
)

// Platforms enumerates the available platforms. The simulated runtime
// always reports one platform with one device describing the host; the
// device UUID is generated once per process.
func Platforms() []*Platform {
	platformOnce.Do(func() {
		dev := &Device{
			Name:     "Simulated Compute Device",
			Vendor:   "algo-clfft",
			Version:  "sim 1.0",
			UUID:     uuid.New(),
			Features: hostcpu.Detect(),
		}
		platforms = []*Platform{{
			Name:    "algo-clfft simulation",
			Vendor:  "algo-clfft",
			Version: "sim 1.0",
			devices: []*Device{dev},
		}}
	})

	return platforms
}

// Devices lists the platform's devices.
func (p *Platform) Devices() []*Device {
	return append([]*Device(nil), p.devices...)
}
