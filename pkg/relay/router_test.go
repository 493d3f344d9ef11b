package relay_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voyager-inc/contactrelay/pkg/contact"
	"github.com/voyager-inc/contactrelay/pkg/environment"
	"github.com/voyager-inc/contactrelay/pkg/httpserver"
	"github.com/voyager-inc/contactrelay/pkg/relay"
	"github.com/voyager-inc/contactrelay/pkg/requestid"
)

func TestRouter(t *testing.T) {
	t.Parallel()

	site := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(site, "index.html"), []byte("<h1>VOYAGER</h1>"), 0o644))

	sender := &mockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	svc := newService(t, sender)

	router := relay.Router(relay.RouterOptions{
		Relayer:     svc,
		Environment: environment.Production,
		Ready:       []httpserver.Check{{Name: "relay", Fn: svc.Ready}},
		SiteDir:     site,
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("liveness", func(t *testing.T) {
		w := do(http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ALIVE", w.Body.String())
		assert.NotEmpty(t, w.Header().Get(requestid.Header))
	})

	t.Run("readiness", func(t *testing.T) {
		w := do(http.MethodGet, "/readyz", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("send", func(t *testing.T) {
		w := do(http.MethodPost, relay.Path, acmeJSON(t, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assertCORS(t, w)
	})

	t.Run("send with trailing slash", func(t *testing.T) {
		w := do(http.MethodPost, relay.Path+"/", acmeJSON(t, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := do(http.MethodGet, relay.Path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

		var reply contact.Reply
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
		assert.Equal(t, contact.MsgMethodNotAllowed, reply.Message)
		assertCORS(t, w)
	})

	t.Run("static site", func(t *testing.T) {
		w := do(http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "VOYAGER")
	})

	t.Run("request id is propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(requestid.Header, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(requestid.Header))
	})
}

func TestRouter_WithoutSite(t *testing.T) {
	t.Parallel()

	router := relay.Router(relay.RouterOptions{Relayer: newService(t, &mockSender{})})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
