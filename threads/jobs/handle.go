package jobs

import (
	"fmt"
	"runtime/debug"
)

// Handle is a joinable worker goroutine.
//
// A panic inside the worker does not crash the program: it is recovered in
// the worker's own goroutine (recover only works there) and returned from
// Join as a *PanicError.
type Handle struct {
	done chan struct{}
	err  error
}

// Spawn starts fn in a new goroutine and returns its handle.
func Spawn(fn func()) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer func() {
			if r := recover(); r != nil {
				h.err = &PanicError{Value: r, Stack: debug.Stack()}
			}
		}()
		fn()
	}()
	return h
}

// Join blocks until the worker returns. It may be called more than once and
// from several goroutines; every call returns the same result.
func (h *Handle) Join() error {
	<-h.done
	return h.err
}

// PanicError carries a recovered worker panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("worker panicked: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
