// Package binder decodes HTTP request bodies into typed values.
//
// JSON returns a handler.Bind compatible function:
//
//	http.Handle("/api/send-email", handler.Wrap(h,
//	    handler.WithBinder[handler.Context, contact.Submission](binder.JSON(binder.AllowUnknownFields())),
//	))
//
// Bodies are capped at DefaultMaxJSONSize unless WithMaxBytes says otherwise.
// The Content-Type must be application/json (parameters such as charset are
// ignored). Unknown fields are rejected unless AllowUnknownFields is set, and
// trailing data after the first JSON value is an error.
//
// Every failure wraps one of the package sentinels; an empty body wraps both
// ErrEmptyBody and ErrFailedToParseJSON so callers may treat it either way.
package binder
