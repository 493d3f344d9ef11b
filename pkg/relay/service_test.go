package relay_test

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voyager-inc/contactrelay/pkg/contact"
	"github.com/voyager-inc/contactrelay/pkg/email"
	"github.com/voyager-inc/contactrelay/pkg/relay"
	"github.com/voyager-inc/contactrelay/pkg/validator"
)

var fixedNow = time.Date(2026, time.October, 19, 7, 30, 0, 0, time.UTC)

func testConfig() relay.Config {
	return relay.Config{
		CompanyEmail: "team@voyager.example",
		Timezone:     relay.DefaultTimezone,
	}
}

func acmeSubmission() contact.Submission {
	return contact.Submission{
		CompanyName: "Acme",
		YourName:    "Jo",
		Email:       "jo@acme.com",
		Subject:     "support",
		Message:     "Help\nplease",
	}
}

func newService(t *testing.T, sender email.Sender) *relay.Service {
	t.Helper()
	svc, err := relay.NewService(testConfig(), sender, relay.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return svc
}

func TestNewService_Config(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}

	_, err := relay.NewService(testConfig(), nil)
	assert.ErrorIs(t, err, relay.ErrInvalidConfig)

	_, err = relay.NewService(relay.Config{}, sender)
	assert.ErrorIs(t, err, relay.ErrInvalidConfig, "recipient has no fallback")

	_, err = relay.NewService(relay.Config{CompanyEmail: "not-an-address"}, sender)
	assert.ErrorIs(t, err, relay.ErrInvalidConfig)

	assert.Panics(t, func() { relay.MustNewService(relay.Config{}, sender) })

	svc, err := relay.NewService(relay.Config{CompanyEmail: "team@voyager.example", Timezone: "Mars/Olympus"}, sender)
	require.NoError(t, err, "unknown timezone falls back to UTC")
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestService_Message(t *testing.T) {
	t.Parallel()

	svc := newService(t, &mockSender{})

	msg, err := svc.Message(context.Background(), acmeSubmission())
	require.NoError(t, err)

	assert.Equal(t, "Contact Form: Technical Support - Acme", msg.Subject)
	assert.Equal(t, []string{"team@voyager.example"}, msg.To)
	assert.Equal(t, "jo@acme.com", msg.ReplyTo)
	assert.Equal(t, relay.DefaultTag, msg.Tag)
	assert.Empty(t, msg.From, "sender supplies the configured From")
	assert.Contains(t, msg.HTML, "Help<br>please")
	assert.Contains(t, msg.HTML, "Not provided")
	assert.Contains(t, msg.HTML, "October 19, 2026 at 02:30 PM GMT+7")
}

func TestService_Relay(t *testing.T) {
	t.Parallel()

	t.Run("sends normalized submission", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
			return msg.Subject == "Contact Form: General Inquiry - Acme" && msg.ReplyTo == "jo@acme.com"
		})).Return(nil).Once()

		sub := acmeSubmission()
		sub.CompanyName = "  Acme  "
		sub.Email = " jo@acme.com "
		sub.Subject = "something-else"

		require.NoError(t, newService(t, sender).Relay(context.Background(), sub))
		sender.AssertExpectations(t)
	})

	t.Run("missing field never reaches provider", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sub := acmeSubmission()
		sub.Message = "   "

		err := newService(t, sender).Relay(context.Background(), sub)
		assert.ErrorIs(t, err, validator.ErrFieldRequired)
		assert.Equal(t, contact.MsgMissingFields, contact.ValidationMessage(err))
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("invalid email never reaches provider", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sub := acmeSubmission()
		sub.Email = "jo@acme"

		err := newService(t, sender).Relay(context.Background(), sub)
		assert.Equal(t, contact.MsgInvalidEmail, contact.ValidationMessage(err))
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		t.Parallel()

		providerErr := errors.Join(email.ErrFailedToSendEmail, errors.New("domain not verified"))
		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.Anything).Return(providerErr).Once()

		err := newService(t, sender).Relay(context.Background(), acmeSubmission())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		sender.AssertExpectations(t)
	})
}

func TestService_ReadyOnNil(t *testing.T) {
	t.Parallel()

	var svc *relay.Service
	assert.ErrorIs(t, svc.Ready(context.Background()), relay.ErrNotReady)
}
