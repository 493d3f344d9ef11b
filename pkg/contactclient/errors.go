package contactclient

import (
	"errors"
	"fmt"
)

var (
	ErrSubmissionInFlight = errors.New("contactclient: submission already in flight")
	ErrInvalidSubmission  = errors.New("contactclient: invalid submission")
	ErrRequestFailed      = errors.New("contactclient: request failed")
)

// ReplyError is returned when the relay answers with a non-2xx status or a
// body without success:true.
// Message is empty when the reply was not a relay JSON body.
type ReplyError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *ReplyError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = "server error: " + e.Status
	}
	return fmt.Sprintf("contactclient: relay replied %d: %s", e.StatusCode, detail)
}

func (e *ReplyError) Unwrap() error {
	return ErrRequestFailed
}
