package cl

import "errors"

var (
	// ErrNilDevice is returned when creating a context without a device.
	ErrNilDevice = errors.New("cl: nil device")

	// ErrContextReleased is returned when using a released context.
	ErrContextReleased = errors.New("cl: context released")

	// ErrQueueClosed is returned when enqueueing on a closed queue.
	ErrQueueClosed = errors.New("cl: queue closed")

	// ErrBufferReleased is returned when using a released buffer.
	ErrBufferReleased = errors.New("cl: buffer released")

	// ErrInvalidSize is returned for negative buffer sizes.
	ErrInvalidSize = errors.New("cl: invalid buffer size")

	// ErrSizeMismatch is returned when a host transfer does not cover the
	// whole buffer.
	ErrSizeMismatch = errors.New("cl: transfer size mismatch")
)
