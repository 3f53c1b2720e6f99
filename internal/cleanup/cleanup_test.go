package cleanup

import (
	"errors"
	"testing"
)

func TestRunAll_ReverseOrderAndReset(t *testing.T) {
	var order []int
	Register(func() error { order = append(order, 1); return nil })
	Register(nil)
	Register(func() error { order = append(order, 2); return nil })

	if err := RunAll(); err != nil {
		t.Fatalf("RunAll() = %v, want nil", err)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("run order = %v, want [2 1]", order)
	}

	// The queue is cleared: a second run does nothing.
	if err := RunAll(); err != nil {
		t.Fatalf("second RunAll() = %v, want nil", err)
	}
	if len(order) != 2 {
		t.Fatalf("funcs ran again: order = %v", order)
	}
}

func TestRunAll_JoinsErrorsAndKeepsGoing(t *testing.T) {
	errA := errors.New("close a")
	errB := errors.New("close b")
	ran := false
	Register(func() error { ran = true; return nil })
	Register(func() error { return errA })
	Register(func() error { return errB })

	err := RunAll()
	if err == nil {
		t.Fatal("RunAll() = nil, want joined error")
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("RunAll() = %v, want both registered errors", err)
	}
	if !ran {
		t.Fatal("earlier func skipped after a failure")
	}
}
