package clfft

import "sync"

// engineAccount reference-counts process-wide engine setup. The first
// acquire binds the registered engine and calls Setup; the last release
// calls Teardown and unbinds. The mutex makes overlapping plan lifecycles
// from multiple goroutines safe, and guarantees Setup and Teardown never
// overlap in time.
type engineAccount struct {
	mu     sync.Mutex
	refs   int
	active Engine
}

// The package-level account shared by all FFT values.
var account engineAccount

// acquire binds the engine on the 0->1 transition and returns the engine
// every live plan in this process is using.
func (a *engineAccount) acquire() (Engine, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.refs == 0 {
		e := getEngine()
		if e == nil {
			return nil, ErrNoEngine
		}
		if !e.Available() {
			return nil, ErrEngineUnavailable
		}
		if st := e.Setup(); st != StatusSuccess {
			return nil, &EngineError{Status: st}
		}
		a.active = e
	}

	a.refs++

	return a.active, nil
}

// release drops one reference and tears the engine down on the 1->0
// transition. Callers release exactly once per successful acquire.
func (a *engineAccount) release() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.refs == 0 {
		return nil
	}

	a.refs--
	if a.refs > 0 {
		return nil
	}

	e := a.active
	a.active = nil

	if st := e.Teardown(); st != StatusSuccess {
		return &EngineError{Status: st}
	}

	return nil
}

// count reports the number of live references.
func (a *engineAccount) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.refs
}
