package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyager-inc/contactrelay/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("submission", slog.String("subject", "support"), slog.Int("fields", 6))
	require.Equal(t, "submission", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "subject", g[0].Key)
	assert.Equal(t, "fields", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("provider down")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestScopedAttrs(t *testing.T) {
	assert.Equal(t, "request_id", logger.RequestID("abc").Key)
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))

	assert.Equal(t, "client_ip", logger.ClientIP("203.0.113.9").Key)
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, "relay", logger.Component("relay").Value.String())
	assert.Equal(t, "send_email", logger.Event("send_email").Value.String())
	assert.Equal(t, "resend", logger.Provider("resend").Value.String())
	assert.Equal(t, int64(400), logger.StatusCode(400).Value.Int64())
	assert.Equal(t, []string{"email"}, logger.Fields("email").Value.Any())
}
