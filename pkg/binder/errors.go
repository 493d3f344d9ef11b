package binder

import "errors"

var (
	ErrFailedToParseJSON    = errors.New("binder: failed to parse JSON")
	ErrEmptyBody            = errors.New("binder: empty request body")
	ErrBodyTooLarge         = errors.New("binder: request body too large")
	ErrMissingContentType   = errors.New("binder: missing content type")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
)
