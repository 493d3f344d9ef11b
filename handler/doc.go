// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and an already bound request value and
// returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	func send(ctx handler.Context, req contact.Submission) handler.Response {
//		if err := svc.Relay(ctx, req); err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(reply)
//	}
//
//	mux.Handle("/api/send-email", handler.Wrap(send,
//		handler.WithBinder[handler.Context, contact.Submission](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, contact.Submission](errHandler),
//		handler.WithDecorators(handler.Recover[handler.Context, contact.Submission]()),
//	))
//
// # Errors
//
// Binding failures, rendering failures and Error responses all reach the
// configured ErrorHandler. NewErrorHandler classifies them:
//
//   - HTTPError sets the status code and message key;
//   - ValidationError sets 400 and the per-field messages;
//   - anything else is a 500.
//
// The classified ErrorInfo is logged (warn for 4xx, error for 5xx) and then
// rendered by ErrorHandlerConfig.Render, so each service chooses its own
// error body.
//
// # Panics
//
// Recover turns a panic in the handler (or in a later decorator) into an
// error wrapping ErrPanic, which then follows the normal error path.
package handler
