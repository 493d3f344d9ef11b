package email_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyager-inc/contactrelay/pkg/email"
)

func validMessage() email.Message {
	return email.Message{
		To:      []string{"team@voyager.example"},
		ReplyTo: "jo@acme.com",
		Subject: "Contact Form: Technical Support - Acme",
		HTML:    "<p>Help<br>please</p>",
		Tag:     "contact-form",
	}
}

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*email.Message)
		wantErr bool
	}{
		{"valid", func(*email.Message) {}, false},
		{"display name from", func(m *email.Message) { m.From = "VOYAGER Contact <onboarding@resend.dev>" }, false},
		{"no recipients", func(m *email.Message) { m.To = nil }, true},
		{"bad recipient", func(m *email.Message) { m.To = []string{"not-an-email"} }, true},
		{"empty recipient", func(m *email.Message) { m.To = []string{""} }, true},
		{"bad reply-to", func(m *email.Message) { m.ReplyTo = "jo@" }, true},
		{"bad from", func(m *email.Message) { m.From = "nobody" }, true},
		{"blank subject", func(m *email.Message) { m.Subject = "  " }, true},
		{"blank body", func(m *email.Message) { m.HTML = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := validMessage()
			tt.mutate(&msg)
			err := msg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var got email.Message
	var s email.Sender = email.SenderFunc(func(_ context.Context, msg email.Message) error {
		got = msg
		return nil
	})

	require.NoError(t, s.Send(context.Background(), validMessage()))
	assert.Equal(t, "contact-form", got.Tag)
}
