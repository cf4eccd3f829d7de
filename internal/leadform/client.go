package leadform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3/client"
)

// Submitter delivers a validated submission and reports how it went.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) Outcome
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, sub Submission) Outcome

func (f SubmitterFunc) Submit(ctx context.Context, sub Submission) Outcome { return f(ctx, sub) }

const defaultRejectMessage = "Request failed"

// HTTPClient posts submissions as JSON to a single endpoint. It makes exactly
// one attempt per call.
type HTTPClient struct {
	endpoint string
	cc       *client.Client
}

// HTTPClientOption customizes an HTTPClient.
type HTTPClientOption func(*HTTPClient)

// WithTimeout bounds each request. Without it the transport default applies.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *HTTPClient) {
		if d > 0 {
			c.cc.SetTimeout(d)
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) HTTPClientOption {
	return func(c *HTTPClient) {
		if ua != "" {
			c.cc.SetUserAgent(ua)
		}
	}
}

func NewHTTPClient(endpoint string, opts ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{
		endpoint: endpoint,
		cc:       client.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type responseBody struct {
	Error  string      `json:"error"`
	Fields FieldErrors `json:"fields"`
}

// Submit sends sub and interprets the response:
//   - transport errors and unparsable bodies are TransportFailure
//   - non-2xx, or 2xx with an "error" field, is Rejected
//   - any other 2xx is Accepted
func (c *HTTPClient) Submit(ctx context.Context, sub Submission) Outcome {
	resp, err := c.cc.Post(c.endpoint, client.Config{
		Ctx:    ctx,
		Body:   sub,
		Header: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		return TransportFailure(err.Error())
	}
	defer resp.Close()

	var body responseBody
	if raw := bytes.TrimSpace(resp.Body()); len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return TransportFailure(fmt.Sprintf("malformed response body: %v", err))
		}
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		msg := body.Error
		if msg == "" {
			msg = defaultRejectMessage
		}
		return Rejected(msg, body.Fields)
	}
	if body.Error != "" {
		return Rejected(body.Error, body.Fields)
	}
	return Accepted()
}
