package botapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultAPIURL is the public Bot API endpoint.
	DefaultAPIURL = "https://api.telegram.org"

	defaultTimeout    = 60 * time.Second
	defaultMaxRetries = 3
	initialBackoff    = time.Second
	maxResponseBytes  = 10 << 20 // 10 MiB

	tracerName = "github.com/flemzord/tgmcp/internal/botapi"
)

// Client is a thin HTTP wrapper around the Telegram Bot API.
// It is safe for concurrent use.
type Client struct {
	token      string
	baseURL    string
	http       *http.Client
	maxRetries int
	tracer     trace.Tracer
	metrics    *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithMaxRetries bounds the number of attempts made when rate limited.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// WithTracerProvider sets the provider used for per-call spans. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

// WithMetrics records per-call observations on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a new Telegram Bot API client. An empty baseURL selects
// DefaultAPIURL.
func NewClient(token, baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	c := &Client{
		token:   token,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		maxRetries: defaultMaxRetries,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call invokes method with args as the JSON body and returns the raw result
// field of a successful response. API-level failures are returned as *APIError.
func (c *Client) Call(ctx context.Context, method string, args map[string]any) (json.RawMessage, error) {
	if args == nil {
		return c.call(ctx, method, nil)
	}
	return c.call(ctx, method, args)
}

// Send invokes the method named by req with req as the JSON body.
func (c *Client) Send(ctx context.Context, req Request) (json.RawMessage, error) {
	return c.call(ctx, req.Method(), req)
}

// GetMe returns the bot's user information.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	return do[User](ctx, c, "getMe", nil)
}

// do calls method and decodes the result field into T.
func do[T any](ctx context.Context, c *Client, method string, payload any) (*T, error) {
	raw, err := c.call(ctx, method, payload)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("telegram: decode %s result: %w", method, err)
	}
	return &out, nil
}

// call wraps post with a span and metrics.
func (c *Client) call(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "telegram."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("telegram.method", method)),
	)
	defer span.End()

	start := time.Now()
	result, err := c.post(ctx, method, payload)
	c.metrics.observe(method, err, time.Since(start))

	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			span.SetAttributes(attribute.Int("telegram.error_code", apiErr.Code))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return result, nil
}

// post sends a JSON POST request to the given Bot API method and decodes the
// response envelope. 429 responses are retried with Retry-After (exponential
// backoff otherwise) up to maxRetries attempts.
func (c *Client) post(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)

	var data []byte
	if payload != nil {
		var err error
		data, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("telegram: marshal %s request: %w", method, err)
		}
	}

	backoff := initialBackoff

	for attempt := range c.maxRetries {
		var body io.Reader
		if data != nil {
			body = bytes.NewReader(data)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
		if err != nil {
			return nil, fmt.Errorf("telegram: create %s request: %w", method, err)
		}
		if data != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			// *url.Error carries the token-bearing URL; keep only the cause.
			var urlErr *url.Error
			if errors.As(err, &urlErr) {
				err = urlErr.Err
			}
			return nil, fmt.Errorf("telegram: %s request failed: %w", method, err)
		}

		respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("telegram: read %s response: %w", method, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < c.maxRetries-1 {
			var apiResp APIResponse[json.RawMessage]
			if err := json.Unmarshal(respBody, &apiResp); err == nil && apiResp.Parameters != nil && apiResp.Parameters.RetryAfter > 0 {
				backoff = time.Duration(apiResp.Parameters.RetryAfter) * time.Second
			}
			c.metrics.rateLimited(method)

			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
			backoff *= 2
			continue
		}

		var apiResp APIResponse[json.RawMessage]
		if err := json.Unmarshal(respBody, &apiResp); err != nil {
			return nil, fmt.Errorf("telegram: decode %s response (status %d): %w", method, resp.StatusCode, err)
		}

		if !apiResp.OK {
			apiErr := &APIError{
				Code:        apiResp.ErrorCode,
				Description: apiResp.Description,
			}
			if apiResp.Parameters != nil {
				apiErr.RetryAfter = apiResp.Parameters.RetryAfter
				apiErr.MigrateToChatID = apiResp.Parameters.MigrateToChatID
			}
			return nil, apiErr
		}

		return apiResp.Result, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrMaxRetries, method)
}
