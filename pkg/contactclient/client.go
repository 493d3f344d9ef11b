package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/voyager-inc/contactrelay/pkg/contact"
)

// EndpointPath is the relay path appended to the client's base URL.
const EndpointPath = "/api/send-email"

// maxReplySize caps how much of a relay response is read.
const maxReplySize = 64 << 10

// Sender posts a submission to the relay.
type Sender interface {
	Send(ctx context.Context, sub contact.Submission) (*contact.Reply, error)
}

// Client talks to a relay over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default pooled go-cleanhttp client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// NewClient returns a Client for the relay at baseURL ("" means same origin
// root, i.e. a bare EndpointPath, which only works with a custom transport).
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   strings.TrimSuffix(baseURL, "/") + EndpointPath,
		httpClient: cleanhttp.DefaultPooledClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts sub as JSON. A reply is returned only when the relay accepted
// the submission; otherwise the error is a *ReplyError or wraps
// ErrRequestFailed.
func (c *Client) Send(ctx context.Context, sub contact.Submission) (*contact.Reply, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	reply, err := decodeReply(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !reply.Success {
		return nil, &ReplyError{StatusCode: resp.StatusCode, Status: resp.Status, Message: reply.Message}
	}
	return reply, nil
}

// decodeReply reads a JSON reply. Non-JSON bodies, such as a proxy error
// page, become an empty failed reply.
func decodeReply(resp *http.Response) (*contact.Reply, error) {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return &contact.Reply{Success: false}, nil
	}

	var reply contact.Reply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, errors.Join(ErrRequestFailed, fmt.Errorf("decode reply: %w", err))
	}
	return &reply, nil
}
