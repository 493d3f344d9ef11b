package relay

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/voyager-inc/contactrelay/handler"
	"github.com/voyager-inc/contactrelay/pkg/binder"
	"github.com/voyager-inc/contactrelay/pkg/contact"
	"github.com/voyager-inc/contactrelay/pkg/environment"
	"github.com/voyager-inc/contactrelay/pkg/logger"
)

// Path is where the endpoint is mounted.
const Path = "/api/send-email"

// Relayer sends a validated submission onward. *Service implements it.
type Relayer interface {
	Relay(ctx context.Context, sub contact.Submission) error
}

// Endpoint serves Path. It dispatches on method itself so that every
// method, including unknown ones, gets the relay's JSON envelope.
type Endpoint struct {
	send http.HandlerFunc
	log  *slog.Logger
}

// NewEndpoint wires r behind the JSON binder, panic recovery and the relay
// error envelope.
func NewEndpoint(r Relayer, log *slog.Logger) *Endpoint {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("relay"))

	send := func(ctx handler.Context, sub contact.Submission) handler.Response {
		if err := r.Relay(ctx, sub); err != nil {
			return handler.Error(classify(err))
		}
		return handler.JSON(contact.Reply{Success: true, Message: contact.MsgSent})
	}

	return &Endpoint{
		log: log,
		send: handler.Wrap(send,
			handler.WithBinder[handler.Context, contact.Submission](bindSubmission(binder.JSON(binder.AllowUnknownFields()))),
			handler.WithErrorHandler[handler.Context, contact.Submission](handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
				Render: renderError,
			})),
			handler.WithDecorators(handler.Recover[handler.Context, contact.Submission]()),
		),
	}
}

// Handler returns the endpoint with CORS applied.
func (e *Endpoint) Handler() http.Handler {
	return CORS(e)
}

func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		e.reply(w, r, http.StatusOK, contact.Reply{Success: true, Message: contact.MsgPreflightOK})
	case http.MethodPost:
		e.send(w, r)
	default:
		w.Header().Set("Allow", AllowMethods)
		e.reply(w, r, http.StatusMethodNotAllowed, contact.Reply{Success: false, Message: contact.MsgMethodNotAllowed})
	}
}

func (e *Endpoint) reply(w http.ResponseWriter, r *http.Request, status int, body contact.Reply) {
	if err := handler.JSON(body, handler.WithJSONStatus(status)).Render(w, r); err != nil {
		e.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

// bindSubmission treats an empty body as an empty submission, so it fails
// field validation, and turns every other decoding error into a 400.
func bindSubmission(bind handler.Bind) handler.Bind {
	return func(r *http.Request, v any) error {
		err := bind(r, v)
		switch {
		case err == nil, errors.Is(err, binder.ErrEmptyBody):
			return nil
		default:
			return failure{status: errInvalidBody, cause: err}
		}
	}
}

// classify maps a Relay error to its HTTP outcome.
func classify(err error) error {
	if msg := contact.ValidationMessage(err); msg != "" {
		return failure{status: handler.NewHTTPError(http.StatusBadRequest, msg), cause: err}
	}
	return failure{status: errSendFailed, cause: err}
}

func renderError(ctx handler.Context, info handler.ErrorInfo) handler.Response {
	reply := contact.Reply{Success: false, Message: info.Message}
	if len(info.Fields) > 0 {
		reply.Errors = map[string][]string(info.Fields)
	}
	if info.StatusCode >= http.StatusInternalServerError {
		reply.Message = contact.MsgSendFailed
		if environment.IsDevelopment(ctx) && info.Err != nil {
			reply.Error = info.Err.Error()
		}
	}
	return handler.JSON(reply, handler.WithJSONStatus(info.StatusCode))
}
