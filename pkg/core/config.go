package core

import (
	"crypto/ed25519"
	"encoding/base64"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the production trading API endpoint.
// The venue does not offer a sandbox environment.
const DefaultBaseURL = "https://trading.robinhood.com"

// Credentials holds the API authentication material for an account.
// The private key is the base64 encoding of a 32-byte Ed25519 seed.
// Credentials are read-only after construction and safe to share across
// concurrent requests. They are never written to logs.
type Credentials struct {
	// APIKey is the public API key identifier (the "rh-api-..." value).
	APIKey string `json:"api_key" validate:"required"`
	// PrivateKeyB64 is the base64-encoded 32-byte Ed25519 private seed.
	PrivateKeyB64 string `json:"-" validate:"required"`
	// PublicKey is the base64-encoded public key registered with the venue.
	PublicKey string `json:"public_key"`
}

// Seed decodes the private key and returns the raw 32-byte Ed25519 seed.
// It returns ErrInvalidKeyMaterial if the value is not valid base64 or does
// not decode to exactly 32 bytes.
func (c *Credentials) Seed() ([]byte, error) {
	seed, err := base64.StdEncoding.DecodeString(c.PrivateKeyB64)
	if err != nil {
		return nil, ErrInvalidKeyMaterial
	}
	if len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidKeyMaterial
	}
	return seed, nil
}

// Config contains all configuration options for the client.
// It includes authentication, networking, and rate limiting settings.
// The caller owns the lifecycle of the config; the client holds no
// process-global state.
type Config struct {
	// BaseURL is the API endpoint. Defaults to DefaultBaseURL.
	BaseURL     string       `json:"base_url" validate:"required,url"`
	Credentials *Credentials `json:"credentials,omitempty"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout      time.Duration `json:"timeout" validate:"min=1ms"`
	MaxRetries   int           `json:"max_retries" validate:"min=0"`
	RetryWaitMin time.Duration `json:"retry_wait_min" validate:"min=0"`
	RetryWaitMax time.Duration `json:"retry_wait_max" validate:"min=0"`

	// RateLimitRequests is the number of requests allowed per RateLimitPeriod.
	// Zero disables client-side rate limiting.
	RateLimitRequests int           `json:"rate_limit_requests" validate:"min=0"`
	RateLimitPeriod   time.Duration `json:"rate_limit_period" validate:"min=0"`

	CircuitBreakerEnabled       bool          `json:"circuit_breaker_enabled"`
	CircuitBreakerFailThreshold int           `json:"circuit_breaker_fail_threshold"`
	CircuitBreakerCooldown      time.Duration `json:"circuit_breaker_cooldown"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config initialized with sensible defaults:
// 10s timeout, no automatic retries, 100 requests/minute rate limit,
// circuit breaker disabled.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,

		Timeout:      10 * time.Second,
		MaxRetries:   0,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 1 * time.Second,

		RateLimitRequests: 100,
		RateLimitPeriod:   time.Minute,

		CircuitBreakerEnabled:       false,
		CircuitBreakerFailThreshold: 5,
		CircuitBreakerCooldown:      30 * time.Second,

		LogLevel: "info",
	}
}

var validate = validator.New()

// Validate checks the config for structural problems and verifies that the
// credential key material decodes to a usable Ed25519 seed. All failures are
// reported as config errors before any network call is attempted.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return NewAPIError(ErrorTypeConfig, 0, err.Error()).WithCode(ErrCodeInvalidConfig)
	}
	if c.RateLimitRequests > 0 && c.RateLimitPeriod <= 0 {
		return NewAPIError(ErrorTypeConfig, 0,
			"rate_limit_period must be positive when rate limiting is enabled").WithCode(ErrCodeInvalidConfig)
	}
	if c.Credentials == nil {
		return NewAPIError(ErrorTypeConfig, 0, ErrNoCredentials.Error()).WithCode(ErrCodeNoCredentials)
	}
	if err := validate.Struct(c.Credentials); err != nil {
		return NewAPIError(ErrorTypeConfig, 0, err.Error()).WithCode(ErrCodeNoCredentials)
	}
	if _, err := c.Credentials.Seed(); err != nil {
		return NewAPIError(ErrorTypeConfig, 0, err.Error()).WithCode(ErrCodeInvalidKeyMaterial)
	}
	return nil
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithBaseURL overrides the API endpoint and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRateLimit sets the rate limiting parameters and returns the config for chaining.
func (c *Config) WithRateLimit(requests int, period time.Duration) *Config {
	c.RateLimitRequests = requests
	c.RateLimitPeriod = period
	return c
}

// WithCircuitBreaker enables the circuit breaker and returns the config for chaining.
func (c *Config) WithCircuitBreaker(failThreshold int, cooldown time.Duration) *Config {
	c.CircuitBreakerEnabled = true
	c.CircuitBreakerFailThreshold = failThreshold
	c.CircuitBreakerCooldown = cooldown
	return c
}
