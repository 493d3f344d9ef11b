package contactclient_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyager-inc/contactrelay/pkg/contact"
	"github.com/voyager-inc/contactrelay/pkg/contactclient"
)

type senderFunc func(ctx context.Context, sub contact.Submission) (*contact.Reply, error)

func (f senderFunc) Send(ctx context.Context, sub contact.Submission) (*contact.Reply, error) {
	return f(ctx, sub)
}

func okSender(calls *int) senderFunc {
	return func(context.Context, contact.Submission) (*contact.Reply, error) {
		*calls++
		return &contact.Reply{Success: true, Message: contact.MsgSent}, nil
	}
}

func TestHandler_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		values      contact.Submission
		sender      func(calls *int) senderFunc
		wantErr     error
		wantKind    contactclient.Kind
		wantMessage string
		wantCalls   int
		wantReset   bool
	}{
		{
			name:        "success resets form",
			values:      validSubmission(),
			sender:      okSender,
			wantKind:    contactclient.KindSuccess,
			wantMessage: contact.MsgClientSent,
			wantCalls:   1,
			wantReset:   true,
		},
		{
			name: "blank required field stays local",
			values: func() contact.Submission {
				s := validSubmission()
				s.Message = "  \n "
				return s
			}(),
			sender:      okSender,
			wantErr:     contactclient.ErrInvalidSubmission,
			wantKind:    contactclient.KindError,
			wantMessage: contact.MsgClientMissingFields,
		},
		{
			name: "bad email stays local",
			values: func() contact.Submission {
				s := validSubmission()
				s.Email = "jo at acme"
				return s
			}(),
			sender:      okSender,
			wantErr:     contactclient.ErrInvalidSubmission,
			wantKind:    contactclient.KindError,
			wantMessage: contact.MsgClientInvalidEmail,
		},
		{
			name:   "relay error shows server message",
			values: validSubmission(),
			sender: func(calls *int) senderFunc {
				return func(context.Context, contact.Submission) (*contact.Reply, error) {
					*calls++
					return nil, &contactclient.ReplyError{StatusCode: http.StatusInternalServerError, Message: contact.MsgSendFailed}
				}
			},
			wantErr:     contactclient.ErrRequestFailed,
			wantKind:    contactclient.KindError,
			wantMessage: contact.MsgSendFailed,
			wantCalls:   1,
		},
		{
			name:   "proxy error page shows fallback",
			values: validSubmission(),
			sender: func(calls *int) senderFunc {
				return func(context.Context, contact.Submission) (*contact.Reply, error) {
					*calls++
					return nil, &contactclient.ReplyError{StatusCode: http.StatusBadGateway, Status: "502 Bad Gateway"}
				}
			},
			wantErr:     contactclient.ErrRequestFailed,
			wantKind:    contactclient.KindError,
			wantMessage: contact.MsgClientFailed,
			wantCalls:   1,
		},
		{
			name:   "network error shows fallback",
			values: validSubmission(),
			sender: func(calls *int) senderFunc {
				return func(context.Context, contact.Submission) (*contact.Reply, error) {
					*calls++
					return nil, errors.Join(contactclient.ErrRequestFailed, errors.New("connection reset"))
				}
			},
			wantErr:     contactclient.ErrRequestFailed,
			wantKind:    contactclient.KindError,
			wantMessage: contact.MsgClientFailed,
			wantCalls:   1,
		},
		{
			name:   "panicking transport still restores",
			values: validSubmission(),
			sender: func(calls *int) senderFunc {
				return func(context.Context, contact.Submission) (*contact.Reply, error) {
					*calls++
					panic("transport exploded")
				}
			},
			wantErr:     contactclient.ErrRequestFailed,
			wantKind:    contactclient.KindError,
			wantMessage: contact.MsgClientFailed,
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			form := contactclient.NewMemoryForm(tt.values, "Send Message")
			h := contactclient.NewHandler(tt.sender(&calls), nil)

			err := h.Submit(context.Background(), form)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantCalls, calls)
			assert.False(t, form.Submitting(), "submit control re-enabled")
			assert.Equal(t, "Send Message", form.SubmitLabel())

			cur, ok := h.Notifier().Current()
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, cur.Kind)
			assert.Equal(t, tt.wantMessage, cur.Message)

			if tt.wantReset {
				assert.Equal(t, contact.Submission{}, form.Values())
			} else {
				assert.Equal(t, tt.values, form.Values())
			}
			if tt.wantCalls == 0 {
				assert.Zero(t, form.Transitions(), "local rejection never disables the control")
			} else {
				assert.Equal(t, 2, form.Transitions())
			}
		})
	}
}

func TestHandler_SendsTrimmedValues(t *testing.T) {
	t.Parallel()

	var got contact.Submission
	h := contactclient.NewHandler(senderFunc(func(_ context.Context, sub contact.Submission) (*contact.Reply, error) {
		got = sub
		return &contact.Reply{Success: true}, nil
	}), nil)

	values := validSubmission()
	values.CompanyName = "  Acme "
	values.Phone = " +84 90 "

	require.NoError(t, h.Submit(context.Background(), contactclient.NewMemoryForm(values, "Send")))
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, "+84 90", got.Phone)
}

func TestHandler_RejectsOverlappingSubmit(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	h := contactclient.NewHandler(senderFunc(func(context.Context, contact.Submission) (*contact.Reply, error) {
		once.Do(func() { close(entered) })
		<-release
		return &contact.Reply{Success: true}, nil
	}), nil)

	form := contactclient.NewMemoryForm(validSubmission(), "Send")
	done := make(chan error, 1)
	go func() { done <- h.Submit(context.Background(), form) }()

	select {
	case <-entered:
	case <-time.After(time.Second):
		require.FailNow(t, "first submit never reached the sender")
	}
	assert.True(t, form.Submitting())
	assert.Equal(t, contact.MsgClientSending, form.SubmitLabel())

	other := contactclient.NewMemoryForm(validSubmission(), "Send")
	err := h.Submit(context.Background(), other)
	assert.ErrorIs(t, err, contactclient.ErrSubmissionInFlight)
	assert.Zero(t, other.Transitions())

	close(release)
	require.NoError(t, <-done)
	assert.False(t, form.Submitting())

	require.NoError(t, h.Submit(context.Background(), contactclient.NewMemoryForm(validSubmission(), "Send")))
}
