// Package cl is a small in-process simulation of an OpenCL-style device
// runtime: platforms, devices, contexts, command queues, and device buffers.
//
// It exists so the clfft adapter and its engines can run end to end without
// vendor hardware. Queues execute enqueued operations asynchronously on a
// worker goroutine in strict FIFO order; Finish drains a queue and reports
// the first asynchronous error since the previous Finish. Buffers are
// identity-comparable handles over simulated device memory.
package cl
