package contactclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/voyager-inc/contactrelay/pkg/contact"
	"github.com/voyager-inc/contactrelay/pkg/logger"
	"github.com/voyager-inc/contactrelay/pkg/validator"
)

// Handler submits a Form through a Sender.
type Handler struct {
	sender   Sender
	notifier *Notifier
	log      *slog.Logger
	busy     atomic.Bool
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHandler returns a Handler. A nil notifier gets a default one.
func NewHandler(sender Sender, notifier *Notifier, opts ...HandlerOption) *Handler {
	if notifier == nil {
		notifier = NewNotifier()
	}
	h := &Handler{sender: sender, notifier: notifier, log: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Notifier returns the notifier outcomes are reported to.
func (h *Handler) Notifier() *Notifier {
	return h.notifier
}

// Submit validates form locally, sends it and reports the outcome. Invalid
// input never reaches the network. The form is reset only on success.
func (h *Handler) Submit(ctx context.Context, form Form) error {
	if !h.busy.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer h.busy.Store(false)

	sub := form.Values().Normalize()
	if err := sub.Validate(); err != nil {
		h.notifier.Show(KindError, clientValidationMessage(err))
		return errors.Join(ErrInvalidSubmission, err)
	}

	form.SetSubmitting(true)
	defer form.SetSubmitting(false)

	if _, err := h.send(ctx, sub); err != nil {
		h.log.WarnContext(ctx, "contact form not sent",
			logger.Component("contactclient"),
			logger.Error(err),
		)
		h.notifier.Show(KindError, failureMessage(err))
		return err
	}

	h.notifier.Show(KindSuccess, contact.MsgClientSent)
	form.Reset()
	return nil
}

// send calls the sender, converting a panic into an error.
func (h *Handler) send(ctx context.Context, sub contact.Submission) (reply *contact.Reply, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reply, err = nil, fmt.Errorf("%w: panic: %v", ErrRequestFailed, rec)
		}
	}()
	return h.sender.Send(ctx, sub)
}

func clientValidationMessage(err error) string {
	if errors.Is(err, validator.ErrFieldRequired) {
		return contact.MsgClientMissingFields
	}
	return contact.MsgClientInvalidEmail
}

// failureMessage prefers the relay's own message.
func failureMessage(err error) string {
	var replyErr *ReplyError
	if errors.As(err, &replyErr) && replyErr.Message != "" {
		return replyErr.Message
	}
	return contact.MsgClientFailed
}
