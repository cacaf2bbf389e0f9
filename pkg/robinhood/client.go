// Package robinhood is a signed-request client for the Robinhood crypto
// trading API. Every call is authenticated with an Ed25519 signature over a
// canonical message; all monetary fields use exact-decimal arithmetic.
package robinhood

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"robincrypto/internal/circuitbreaker"
	"robincrypto/internal/ratelimit"
	"robincrypto/internal/signer"
	"robincrypto/internal/transport"
	"robincrypto/pkg/core"
)

// Client executes authenticated requests against the trading API. It is safe
// for concurrent use: the signing identity is immutable and no per-call state
// is shared. The client gives no cross-call ordering guarantee; concurrent
// create/cancel calls for the same order are ordered by the server.
type Client struct {
	config    *core.Config
	signer    *signer.Signer
	transport *transport.Client
	limiter   *ratelimit.Limiter
	breaker   *circuitbreaker.Breaker
	logger    zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates a Client from the given configuration. Credential problems are
// reported here, before any network call is attempted.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	identity, err := signer.NewIdentity(config.Credentials)
	if err != nil {
		return nil, core.NewAPIError(core.ErrorTypeConfig, 0, err.Error()).
			WithCode(core.ErrCodeInvalidKeyMaterial)
	}

	var limiter *ratelimit.Limiter
	if config.RateLimitRequests > 0 {
		limiter = ratelimit.New(config.RateLimitRequests, config.RateLimitPeriod)
	}

	var breaker *circuitbreaker.Breaker
	if config.CircuitBreakerEnabled {
		breaker = circuitbreaker.New(config.CircuitBreakerFailThreshold, config.CircuitBreakerCooldown)
	}

	return &Client{
		config: config,
		signer: signer.New(identity),
		transport: transport.NewClient(&transport.Config{
			BaseURL:      config.BaseURL,
			Timeout:      config.Timeout,
			MaxRetries:   config.MaxRetries,
			RetryWaitMin: config.RetryWaitMin,
			RetryWaitMax: config.RetryWaitMax,
		}, o.logger),
		limiter: limiter,
		breaker: breaker,
		logger:  o.logger,
	}, nil
}

// Close releases the underlying transport resources.
func (c *Client) Close() error {
	return c.transport.Close()
}

// do signs and dispatches a request and returns the raw response once
// HTTP-level and venue-level errors have been handled. The signature covers
// the full path (query string included) and the exact body bytes that are
// transmitted.
func (c *Client) do(ctx context.Context, req *core.Request) (*transport.Response, error) {
	fullPath := req.FullPath()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, classifyTransportError(err)
		}
	}

	if c.breaker != nil && !c.breaker.Allow() {
		return nil, core.NewAPIError(core.ErrorTypeNetwork, 0, "circuit breaker open").
			WithCode(core.ErrCodeNetwork)
	}

	// Timestamp is read inside Headers, immediately before signing, so the
	// rate limiter wait above cannot leave us with a stale signature.
	headers, err := c.signer.Headers(req.Method, fullPath, req.Body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		headers[k] = v
	}

	resp, err := c.transport.Do(ctx, req.Method, fullPath, headers, req.Body)
	if c.breaker != nil {
		c.breaker.Record(err == nil)
	}
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if !resp.IsSuccess() {
		return nil, parseVenueError(resp)
	}
	return resp, nil
}

// execute runs a request and decodes the JSON response body into result.
// Decode failures are surfaced with context, never defaulted: silently
// returning zero values for malformed financial data is unacceptable.
func (c *Client) execute(ctx context.Context, req *core.Request, result any) error {
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := resp.Unmarshal(result); err != nil {
		return core.NewAPIError(core.ErrorTypeDecode, resp.StatusCode,
			fmt.Sprintf("decode response: %v", err)).WithCode(core.ErrCodeDecodeFailed)
	}
	return nil
}

// classifyTransportError maps dispatch failures onto the error taxonomy.
// Transport errors are not retried here; retry policy belongs to the caller.
func classifyTransportError(err error) *core.APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return core.NewAPIError(core.ErrorTypeTimeout, 0, err.Error()).WithCode(core.ErrCodeTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return core.NewAPIError(core.ErrorTypeTimeout, 0, err.Error()).WithCode(core.ErrCodeTimeout)
	}
	return core.NewAPIError(core.ErrorTypeNetwork, 0, err.Error()).WithCode(core.ErrCodeNetwork)
}

// venueError is the error envelope the venue returns on non-2xx responses.
// Field-level problems arrive in errors[]; some endpoints use a flat
// code/message pair instead.
type venueError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Errors  []struct {
		Detail string `json:"detail"`
		Attr   string `json:"attr"`
	} `json:"errors"`
}

// parseVenueError decodes a non-2xx body into a structured APIError, keeping
// the venue's status, code, and message intact.
func parseVenueError(resp *transport.Response) *core.APIError {
	errType := errorTypeForStatus(resp.StatusCode)

	var ve venueError
	if err := sonic.Unmarshal(resp.Body, &ve); err == nil {
		code := ve.Code
		if code == "" {
			code = ve.Type
		}
		message := ve.Message
		if message == "" && len(ve.Errors) > 0 {
			message = ve.Errors[0].Detail
		}
		if code != "" || message != "" {
			apiErr := core.NewAPIErrorWithCode(errType, resp.StatusCode, code, message)
			if len(ve.Errors) > 0 && ve.Errors[0].Attr != "" {
				apiErr = apiErr.WithField(ve.Errors[0].Attr)
			}
			return apiErr
		}
	}

	return core.NewAPIError(errType, resp.StatusCode,
		fmt.Sprintf("http error: %s", string(resp.Body)))
}

func errorTypeForStatus(status int) core.ErrorType {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrorTypeAuthentication
	case status == http.StatusNotFound:
		return core.ErrorTypeNotFound
	case status == http.StatusTooManyRequests:
		return core.ErrorTypeRateLimit
	case status >= 400 && status < 500:
		return core.ErrorTypeBadRequest
	case status >= 500:
		return core.ErrorTypeServerError
	default:
		return core.ErrorTypeUnknown
	}
}
