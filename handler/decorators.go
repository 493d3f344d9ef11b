package handler

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries the recovered value and the stack at the panic site.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPanic, e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrPanic
}

// Recover converts a panic raised by the wrapped handler into an Error
// response carrying a *PanicError.
func Recover[C Context, R any]() Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) (resp Response) {
			defer func() {
				if rec := recover(); rec != nil {
					resp = Error(&PanicError{Value: rec, Stack: debug.Stack()})
				}
			}()
			return next(ctx, req)
		}
	}
}
