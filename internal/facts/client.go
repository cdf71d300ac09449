package facts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"factsviewer/internal/jsonutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultTimeout bounds a single fetch when the caller does not supply a client.
const DefaultTimeout = 30 * time.Second

const tracerName = "factsviewer/facts"

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d", e.Code)
}

// Client fetches the facts list from a single endpoint.
type Client struct {
	url    string
	http   *http.Client
	tracer oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

// NewClient creates a client for endpoint. An empty endpoint means DefaultURL.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultURL
	}
	c := &Client{
		url:    endpoint,
		http:   &http.Client{Timeout: DefaultTimeout},
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint this client targets.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs one GET against the endpoint and returns the decoded envelope.
// Transport failures are returned unwrapped from *url.Error so the message is
// the underlying cause. Non-2xx responses yield *StatusError without reading
// the body.
func (c *Client) Fetch(ctx context.Context) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "facts.fetch",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("http.url", c.url)),
	)
	defer span.End()

	resp, err := c.fetch(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("facts.count", len(resp.Data)))
	return resp, nil
}

func (c *Client) fetch(ctx context.Context, span oteltrace.Span) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.http.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, uerr.Err
		}
		return nil, err
	}
	defer httpResp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", httpResp.StatusCode))
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &StatusError{Code: httpResp.StatusCode}
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return decodeResponse(body)
}

// decodeResponse parses the envelope. data is required; success, count and
// message are informational and left zero when absent or mistyped.
func decodeResponse(body []byte) (*Response, error) {
	obj, err := jsonutil.UnmarshalObject(body, "decode facts")
	if err != nil {
		return nil, err
	}
	data, err := jsonutil.Required[[]Fact](obj, "data", "decode facts")
	if err != nil {
		return nil, err
	}
	env := &Response{Data: data}
	env.Success, _ = jsonutil.Optional[bool](obj, "success")
	env.Count, _ = jsonutil.Optional[int](obj, "count")
	env.Message, _ = jsonutil.Optional[string](obj, "message")
	return env, nil
}
