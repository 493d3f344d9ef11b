package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrPanic marks an error recovered from a panic
	ErrPanic = errors.New("handler panicked")
)
