package handler

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/voyager-inc/contactrelay/pkg/logger"
	"github.com/voyager-inc/contactrelay/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Fields     ValidationError // nil unless the error carried field errors
	LogLevel   slog.Level
	Err        error
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// Render builds the error body. Nil falls back to http.Error with Message.
	Render func(ctx Context, info ErrorInfo) Response
}

const defaultErrorMessage = "An error occurred processing your request"

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// ClassifyError maps err to a status code, message and field errors.
// An HTTPError decides status and message; field errors force 400 and only
// supply the message when no HTTPError did.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    defaultErrorMessage,
		Err:        err,
	}

	var httpErr HTTPError
	hasHTTPErr := errors.As(err, &httpErr)
	if hasHTTPErr {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	if fields := fieldErrors(err); !fields.IsEmpty() {
		info.StatusCode = http.StatusBadRequest
		info.Fields = fields
		if !hasHTTPErr {
			info.Message = fields.Error()
		}
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func fieldErrors(err error) ValidationError {
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}
	if ve := validator.ExtractValidationErrors(err); ve != nil && !ve.IsEmpty() {
		return ValidationError(ve.Map())
	}
	return nil
}

func logError(log *slog.Logger, ctx Context, info ErrorInfo) {
	attrs := []slog.Attr{
		logger.Error(info.Err),
		logger.StatusCode(info.StatusCode),
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Request().URL.Path),
		logger.Component("error_handler"),
	}
	if len(info.Fields) > 0 {
		attrs = append(attrs, logger.Fields(slices.Sorted(maps.Keys(info.Fields))...))
	}
	var panicErr *PanicError
	if errors.As(info.Err, &panicErr) {
		attrs = append(attrs, slog.String("stack", string(panicErr.Stack)))
	}

	log.LogAttrs(ctx, info.LogLevel, "request error", attrs...)
}

// NewErrorHandler creates the error handler used by Wrap. It logs every
// error and renders it with cfg.Render.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := ClassifyError(err)
		logError(log, ctx, info)

		if cfg.Render == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		if renderErr := cfg.Render(ctx, info).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
