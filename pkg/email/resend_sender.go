package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/resend/resend-go/v2"
)

// ResendSender sends through the Resend emails API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// ResendOption customizes the Resend client.
type ResendOption func(*resendOptions)

type resendOptions struct {
	httpClient *http.Client
	baseURL    string
}

// WithResendHTTPClient replaces the pooled go-cleanhttp client.
func WithResendHTTPClient(c *http.Client) ResendOption {
	return func(o *resendOptions) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithResendBaseURL points the client at another API root, e.g. a test server.
func WithResendBaseURL(u string) ResendOption {
	return func(o *resendOptions) { o.baseURL = u }
}

// NewResendSender requires cfg.ResendAPIKey and a parseable cfg.From.
func NewResendSender(cfg Config, opts ...ResendOption) (*ResendSender, error) {
	if strings.TrimSpace(cfg.ResendAPIKey) == "" {
		return nil, fmt.Errorf("%w: RESEND_API_KEY is required", ErrInvalidConfig)
	}
	if !validAddress(cfg.From) {
		return nil, fmt.Errorf("%w: EMAIL_FROM must be a valid email address", ErrInvalidConfig)
	}

	o := resendOptions{httpClient: cleanhttp.DefaultPooledClient()}
	for _, opt := range opts {
		opt(&o)
	}

	client := resend.NewCustomClient(o.httpClient, cfg.ResendAPIKey)
	if o.baseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("%w: invalid Resend base URL: %v", ErrInvalidConfig, err)
		}
		client.BaseURL = base
	}

	return &ResendSender{client: client, from: cfg.From}, nil
}

// Send validates msg and submits it. Resend rejections and transport errors
// are joined with ErrFailedToSendEmail.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	msg = msg.withFrom(s.from)
	if err := msg.Validate(); err != nil {
		return err
	}

	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}
	if msg.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: msg.Tag}}
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if sent == nil || sent.Id == "" {
		return errors.Join(ErrFailedToSendEmail, errors.New("resend: response without message id"))
	}
	return nil
}
