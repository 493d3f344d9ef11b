package relay

import (
	"errors"
	"net/http"

	"github.com/voyager-inc/contactrelay/handler"
	"github.com/voyager-inc/contactrelay/pkg/contact"
)

var (
	ErrInvalidConfig = errors.New("relay: invalid config")
	ErrRender        = errors.New("relay: failed to render notification")
	ErrNotReady      = errors.New("relay: not ready")
)

var (
	errInvalidBody = handler.NewHTTPError(http.StatusBadRequest, contact.MsgInvalidBody)
	errSendFailed  = handler.NewHTTPError(http.StatusInternalServerError, contact.MsgSendFailed)
)

// failure attaches an HTTP classification to cause while keeping cause's
// message as the error text.
type failure struct {
	status handler.HTTPError
	cause  error
}

func (f failure) Error() string {
	return f.cause.Error()
}

func (f failure) Unwrap() []error {
	return []error{f.status, f.cause}
}
