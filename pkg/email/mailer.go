package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// Sender delivers a fully rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Message is a provider-neutral email.
type Message struct {
	From    string   `json:"from,omitempty"` // overrides the sender's configured From
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"-"`
	Tag     string   `json:"tag,omitempty"`
}

// Validate checks the message before any provider call.
func (m Message) Validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidParams)
	}
	for _, to := range m.To {
		if !validAddress(to) {
			return fmt.Errorf("%w: recipient %q is not a valid email address", ErrInvalidParams, to)
		}
	}
	if m.From != "" && !validAddress(m.From) {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidParams)
	}
	if m.ReplyTo != "" && !validAddress(m.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(m.HTML) == "" {
		return fmt.Errorf("%w: HTML body is required", ErrInvalidParams)
	}
	return nil
}

// withFrom returns m with From defaulted to from.
func (m Message) withFrom(from string) Message {
	if m.From == "" {
		m.From = from
	}
	return m
}

// validAddress accepts bare addresses and "Name <addr>" forms.
func validAddress(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}
