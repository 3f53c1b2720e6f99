// Package cleanup collects teardown funcs registered anywhere in the process
// and runs them once, last-registered first, when the command exits.
package cleanup

import (
	"errors"
	"sync"
)

var (
	mu    sync.Mutex
	funcs []func() error
)

// Register queues fn to run on shutdown. A nil fn is ignored.
func Register(fn func() error) {
	if fn == nil {
		return
	}
	mu.Lock()
	funcs = append(funcs, fn)
	mu.Unlock()
}

// RunAll runs every queued func in reverse registration order, then clears
// the queue. A failing func does not stop the remaining ones; all errors are
// returned joined.
func RunAll() error {
	mu.Lock()
	pending := funcs
	funcs = nil
	mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		if err := pending[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
