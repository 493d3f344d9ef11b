package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/voyager-inc/contactrelay/pkg/contact"
	"github.com/voyager-inc/contactrelay/pkg/email"
	"github.com/voyager-inc/contactrelay/pkg/email/templates"
	"github.com/voyager-inc/contactrelay/pkg/logger"
)

// Service turns a submission into a notification email for the company inbox.
type Service struct {
	sender    email.Sender
	recipient string
	tag       string
	location  *time.Location
	provider  string
	now       func() time.Time
	log       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now, used for the email timestamp.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithProviderName labels log lines with the email provider in use.
func WithProviderName(name string) ServiceOption {
	return func(s *Service) { s.provider = name }
}

// NewService validates cfg and returns a Service sending through sender.
// An unknown timezone falls back to UTC with a warning.
func NewService(cfg Config, sender email.Sender, opts ...ServiceOption) (*Service, error) {
	if sender == nil {
		return nil, fmt.Errorf("%w: email sender is required", ErrInvalidConfig)
	}
	recipient := strings.TrimSpace(cfg.CompanyEmail)
	if recipient == "" {
		return nil, fmt.Errorf("%w: COMPANY_EMAIL is required", ErrInvalidConfig)
	}
	if _, err := mail.ParseAddress(recipient); err != nil {
		return nil, fmt.Errorf("%w: COMPANY_EMAIL is not a valid address", ErrInvalidConfig)
	}

	tag := cfg.Tag
	if tag == "" {
		tag = DefaultTag
	}

	s := &Service{
		sender:    sender,
		recipient: recipient,
		tag:       tag,
		location:  time.UTC,
		now:       time.Now,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	zone := cfg.Timezone
	if zone == "" {
		zone = DefaultTimezone
	}
	if loc, err := time.LoadLocation(zone); err != nil {
		s.log.Warn("unknown timezone, using UTC",
			slog.String("timezone", zone),
			logger.Error(err),
			logger.Component("relay"),
		)
	} else {
		s.location = loc
	}

	return s, nil
}

// MustNewService is NewService that panics on error.
func MustNewService(cfg Config, sender email.Sender, opts ...ServiceOption) *Service {
	s, err := NewService(cfg, sender, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Message builds the notification for sub without sending it. sub must
// already be normalized and valid.
func (s *Service) Message(ctx context.Context, sub contact.Submission) (email.Message, error) {
	body, err := templates.Render(ctx, templates.ContactNotificationEmail(templates.ContactNotification{
		CompanyName: sub.CompanyName,
		YourName:    sub.YourName,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Subject:     contact.SubjectText(sub.Subject),
		Message:     sub.Message,
		SubmittedAt: s.now().In(s.location),
	}))
	if err != nil {
		return email.Message{}, errors.Join(ErrRender, err)
	}

	return email.Message{
		To:      []string{s.recipient},
		ReplyTo: sub.Email,
		Subject: contact.EmailSubject(sub),
		HTML:    body,
		Tag:     s.tag,
	}, nil
}

// Relay normalizes and validates sub, then sends the notification.
// Validation failures are returned unchanged (see contact.ValidationMessage);
// provider failures wrap email.ErrFailedToSendEmail.
func (s *Service) Relay(ctx context.Context, sub contact.Submission) error {
	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		return err
	}

	msg, err := s.Message(ctx, sub)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := s.sender.Send(ctx, msg); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "contact form relayed",
		logger.Component("relay"),
		logger.Event("email_sent"),
		logger.Provider(s.provider),
		slog.String("subject", contact.SubjectText(sub.Subject)),
		logger.Duration(time.Since(start)),
	)
	return nil
}

// Ready reports whether the service can accept submissions.
func (s *Service) Ready(context.Context) error {
	if s == nil || s.sender == nil || s.recipient == "" {
		return ErrNotReady
	}
	return nil
}
