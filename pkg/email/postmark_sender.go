package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/mrz1836/postmark"
)

// PostmarkSender sends through Postmark's transactional API.
type PostmarkSender struct {
	client *postmark.Client
	from   string
}

// NewPostmarkSender requires both Postmark tokens and a parseable cfg.From.
func NewPostmarkSender(cfg Config) (*PostmarkSender, error) {
	if strings.TrimSpace(cfg.PostmarkServerToken) == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.PostmarkAccountToken) == "" {
		return nil, fmt.Errorf("%w: POSTMARK_ACCOUNT_TOKEN is required", ErrInvalidConfig)
	}
	if !validAddress(cfg.From) {
		return nil, fmt.Errorf("%w: EMAIL_FROM must be a valid email address", ErrInvalidConfig)
	}

	client := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	client.HTTPClient = cleanhttp.DefaultPooledClient()

	return &PostmarkSender{client: client, from: cfg.From}, nil
}

// SetBaseURL points the client at another API root, e.g. a test server.
func (s *PostmarkSender) SetBaseURL(u string) {
	s.client.BaseURL = strings.TrimSuffix(u, "/")
}

// Send validates msg and submits it. Opens are tracked; links are left alone
// because the body only holds mailto: links.
func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	msg = msg.withFrom(s.from)
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       msg.From,
		To:         strings.Join(msg.To, ","),
		ReplyTo:    msg.ReplyTo,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTML,
		TrackOpens: true,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
