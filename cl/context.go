package cl

import (
	"log/slog"
	"sync"
)

// Context owns simulated device memory and command queues for one device.
type Context struct {
	device *Device

	mu       sync.Mutex
	logger   *slog.Logger
	released bool
}

// NewContext creates a context for the given device.
func NewContext(dev *Device) (*Context, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	return &Context{device: dev}, nil
}

// Device returns the context's device.
func (c *Context) Device() *Device {
	return c.device
}

// SetLogger installs a logger for queue operation tracing. Nil (the
// default) disables tracing.
func (c *Context) SetLogger(l *slog.Logger) {
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

func (c *Context) log() *slog.Logger {
	c.mu.Lock()
	l := c.logger
	c.mu.Unlock()
	return l
}

// NewQueue creates a command queue with its own worker goroutine.
func (c *Context) NewQueue() (*Queue, error) {
	c.mu.Lock()
	released := c.released
	c.mu.Unlock()

	if released {
		return nil, ErrContextReleased
	}

	return newQueue(c), nil
}

// NewBuffer allocates size bytes of simulated device memory.
func (c *Context) NewBuffer(size int) (*Buffer, error) {
	c.mu.Lock()
	released := c.released
	c.mu.Unlock()

	if released {
		return nil, ErrContextReleased
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}

	return newBuffer(c, size), nil
}

// Release marks the context released. Queues and buffers already created
// stay valid until closed themselves; Release is idempotent.
func (c *Context) Release() error {
	c.mu.Lock()
	c.released = true
	c.mu.Unlock()
	return nil
}
