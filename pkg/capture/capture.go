// Package capture turns panics into error values that can be handed to
// response.Failure.
package capture

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// PanicError wraps a panic value that was not itself an error.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Kind classifies every non-error panic the same way.
func (e *PanicError) Kind() string {
	return "panic"
}

// Do runs fn and returns the panic it raised, if any. Panics with an error
// value, such as runtime errors, are returned unchanged.
func Do(fn func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fromPanic(rec)
		}
	}()
	fn()
	return nil
}

// Call runs fn and returns its result, converting a panic into an error.
func Call[T any](fn func() (T, error)) (value T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			value, err = zero, fromPanic(rec)
		}
	}()
	return fn()
}

func fromPanic(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return &PanicError{
		Value: rec,
		Stack: strings.TrimSpace(string(debug.Stack())),
	}
}
