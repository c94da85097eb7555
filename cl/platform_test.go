package cl

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestPlatformEnumeration(t *testing.T) {
	t.Parallel()

	platforms := Platforms()
	if len(platforms) != 1 {
		t.Fatalf("platforms: got %d, want 1", len(platforms))
	}

	devices := platforms[0].Devices()
	if len(devices) != 1 {
		t.Fatalf("devices: got %d, want 1", len(devices))
	}

	dev := devices[0]
	if dev.Name == "" || dev.Vendor == "" {
		t.Fatalf("device description incomplete: %+v", dev)
	}
	if dev.UUID == uuid.Nil {
		t.Fatal("device UUID not set")
	}
	if dev.Features.Architecture == "" {
		t.Fatal("device feature report missing architecture")
	}

	// The UUID is stable for the process.
	if again := Platforms()[0].Devices()[0]; again.UUID != dev.UUID {
		t.Fatalf("device UUID changed between enumerations: %s vs %s", again.UUID, dev.UUID)
	}
}

func TestContextRelease(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t)

	if err := ctx.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := ctx.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}

	if _, err := ctx.NewQueue(); !errors.Is(err, ErrContextReleased) {
		t.Fatalf("NewQueue after Release: got %v, want ErrContextReleased", err)
	}
	if _, err := ctx.NewBuffer(8); !errors.Is(err, ErrContextReleased) {
		t.Fatalf("NewBuffer after Release: got %v, want ErrContextReleased", err)
	}
}

func TestNewContextNilDevice(t *testing.T) {
	t.Parallel()

	if _, err := NewContext(nil); !errors.Is(err, ErrNilDevice) {
		t.Fatalf("NewContext(nil): got %v, want ErrNilDevice", err)
	}
}

func TestBufferLifecycle(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t)

	if _, err := ctx.NewBuffer(-1); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("negative size: got %v, want ErrInvalidSize", err)
	}

	a, err := ctx.NewBuffer(32)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	b, err := ctx.NewBuffer(32)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}

	if a == b || a.ID() == b.ID() {
		t.Fatal("distinct buffers must be distinct handles")
	}
	if a.Size() != 32 {
		t.Fatalf("Size: got %d, want 32", a.Size())
	}

	if _, err := a.Bytes(); err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	if err := a.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := a.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
	if _, err := a.Bytes(); !errors.Is(err, ErrBufferReleased) {
		t.Fatalf("Bytes after Release: got %v, want ErrBufferReleased", err)
	}

	_ = b.Release()
}
