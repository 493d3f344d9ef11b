// Package logger builds the service's *slog.Logger.
//
// New applies functional options on top of production-safe defaults (JSON
// output, info level, stdout). WithEnvironment picks text/debug output for
// development and JSON/info otherwise, and tags every record with the
// service name and environment.
//
// Request-scoped values are injected through ContextExtractor callbacks that
// run on every Handle call, so a handler only needs to log with the request
// context to get request_id and client_ip attached:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "contact-relay"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "contact email sent", logger.Provider("resend"))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty Attr for nil input so callers can skip nil checks.
package logger
