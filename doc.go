// Package clfft binds dense device vectors to an external single-precision
// complex-to-complex FFT engine in the clFFT/clAmdFft family.
//
// The package implements no transform math of its own. An FFT value owns one
// engine plan (1-3 dimensions, power-of-{2,3,5} sizes, interleaved complex
// layout) and translates execute calls into engine enqueues against device
// buffers. Engine setup and teardown are reference counted process-wide, so
// the first live plan initializes the engine and the last one tears it down.
// Unlike the clAmdFft convention this package follows, concurrent plan
// construction and destruction from multiple goroutines is safe.
//
// Usage:
//
//	clfft.RegisterSimEngine()
//	fft, err := clfft.New(queues, []int{width, height}, clfft.Forward)
//	...
//	err = fft.Apply(input).AssignTo(output) // out-of-place transform
//	err = fft.TransformInPlace(data)        // in-place transform
//
// Completion is asynchronous: execute calls return once the transform is
// enqueued, and callers order against it with cl.Queue.Finish.
package clfft
