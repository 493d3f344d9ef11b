package requestid_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyager-inc/contactrelay/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when header is absent", func(t *testing.T) {
		t.Parallel()
		var seen string
		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/send-email", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses valid inbound id", func(t *testing.T) {
		t.Parallel()
		var seen string
		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
		req.Header.Set(requestid.Header, "edge_1234-abcd")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "edge_1234-abcd", seen)
		assert.Equal(t, "edge_1234-abcd", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces malformed inbound id", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"has space", "<script>", "a/b", strings.Repeat("x", 129)} {
			var seen string
			h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestid.FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Header.Set(requestid.Header, bad)
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.NotEqual(t, bad, seen)
			assert.True(t, requestid.IsValid(seen))
		}
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "abc")
	assert.Equal(t, "abc", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	attr, ok := requestid.LoggerExtractor()(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, slog.String("request_id", "abc"), attr)

	_, ok = requestid.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}
