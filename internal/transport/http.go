// Package transport provides the HTTP transport used for all venue
// communication. It wraps resty with logging and timeout/retry settings and
// deals strictly in raw bytes: the executor signs the exact path and body
// that go on the wire, so the transport must never re-encode either.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"resty.dev/v3"
)

// Client wraps a resty HTTP client with logging and configuration.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
	mu     sync.RWMutex
	closed bool
}

// Config holds the transport settings.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Response represents an HTTP response with its status code, body, and headers.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Body contains the raw response body bytes.
	Body []byte

	// Headers contains the response headers as key-value pairs.
	Headers map[string]string
}

// NewClient creates a transport client with the specified configuration.
func NewClient(config *Config, logger zerolog.Logger) *Client {
	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(config.MaxRetries)
	client.SetRetryWaitTime(config.RetryWaitMin)
	client.SetRetryMaxWaitTime(config.RetryWaitMax)

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}
}

// Do executes a request against fullPath (path plus any query string, exactly
// as signed) with the given headers and raw body bytes.
func (c *Client) Do(ctx context.Context, method, fullPath string, headers map[string]string, body []byte) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, fmt.Errorf("transport is closed")
	}

	req := c.client.R().SetContext(ctx)
	for k, v := range headers {
		req.SetHeader(k, v)
	}

	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	var resp *resty.Response
	var err error

	switch method {
	case http.MethodGet:
		resp, err = req.Get(fullPath)
	case http.MethodPost:
		resp, err = req.Post(fullPath)
	case http.MethodDelete:
		resp, err = req.Delete(fullPath)
	default:
		return nil, fmt.Errorf("unsupported http method: %s", method)
	}

	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("path", fullPath).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	respHeaders := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			respHeaders[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
		Headers:    respHeaders,
	}, nil
}

// SetBaseURL sets the base URL for all subsequent requests.
func (c *Client) SetBaseURL(url string) {
	c.client.SetBaseURL(url)
}

// Close releases the underlying connection pool. Subsequent calls fail.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the response status code indicates an error (4xx or 5xx).
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// Unmarshal parses the response body into the provided value using sonic.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}
