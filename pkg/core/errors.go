package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of a client or venue error.
type ErrorType int

// Error type constants categorize failures so callers can decide what is
// retryable and what is fatal.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeConfig indicates bad or missing credentials/configuration.
	// Raised at construction time, before any network call.
	ErrorTypeConfig
	// ErrorTypeSigning indicates the Ed25519 signing operation failed.
	ErrorTypeSigning
	// ErrorTypeNetwork indicates a network connectivity issue.
	ErrorTypeNetwork
	// ErrorTypeTimeout indicates the request exceeded its deadline.
	ErrorTypeTimeout
	// ErrorTypeRateLimit indicates the venue rate limit was exceeded.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication indicates the venue rejected the signature or key.
	ErrorTypeAuthentication
	// ErrorTypeBadRequest indicates invalid request parameters.
	ErrorTypeBadRequest
	// ErrorTypeNotFound indicates the requested resource does not exist.
	ErrorTypeNotFound
	// ErrorTypeInvalidOrder indicates the order violates venue rules.
	ErrorTypeInvalidOrder
	// ErrorTypeInsufficientFunds indicates the account lacks buying power.
	ErrorTypeInsufficientFunds
	// ErrorTypeDecode indicates the response body did not match the expected shape.
	ErrorTypeDecode
	// ErrorTypeServerError indicates a venue-side error.
	ErrorTypeServerError
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"CONFIG",
		"SIGNING",
		"NETWORK",
		"TIMEOUT",
		"RATE_LIMIT",
		"AUTHENTICATION",
		"BAD_REQUEST",
		"NOT_FOUND",
		"INVALID_ORDER",
		"INSUFFICIENT_FUNDS",
		"DECODE",
		"SERVER_ERROR",
	}[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrNoCredentials is returned when no API credentials are configured.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrInvalidKeyMaterial is returned when the signing seed does not decode
	// to exactly 32 bytes.
	ErrInvalidKeyMaterial = errors.New("invalid key material: seed must be 32 bytes")
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// APIError represents a structured failure from the client or the venue.
// It carries enough context to distinguish validation errors from rate
// limits from authentication failures without string matching.
type APIError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code from the response, if any.
	StatusCode int `json:"status_code"`
	// Code is the venue-specific error code.
	Code string `json:"code"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Field names the JSON field that failed to decode, for decode errors.
	Field string `json:"field,omitempty"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("robinhood: %s (%d/%s): %s", e.Type, e.StatusCode, e.Code, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("robinhood: %s (%d): %s: field %q", e.Type, e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("robinhood: %s (%d): %s", e.Type, e.StatusCode, e.Message)
}

// WithCode returns the error with the specified venue error code attached.
func (e *APIError) WithCode(code ErrorCode) *APIError {
	e.Code = string(code)
	return e
}

// WithField returns the error with the failing JSON field path attached.
func (e *APIError) WithField(field string) *APIError {
	e.Field = field
	return e
}

// NewAPIError creates a new APIError with the specified details.
// The timestamp is automatically set to the current time.
func NewAPIError(errorType ErrorType, statusCode int, message string) *APIError {
	return &APIError{
		Type:       errorType,
		StatusCode: statusCode,
		Message:    message,
		Timestamp:  time.Now(),
	}
}

// NewAPIErrorWithCode creates a new APIError including a venue-specific error code.
// The timestamp is automatically set to the current time.
func NewAPIErrorWithCode(errorType ErrorType, statusCode int, code, message string) *APIError {
	return &APIError{
		Type:       errorType,
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Timestamp:  time.Now(),
	}
}

func errorIsType(err error, t ErrorType) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsConfigError returns true if the error is a configuration/credential failure.
// Config errors are fatal and raised before any network attempt.
func IsConfigError(err error) bool {
	return errorIsType(err, ErrorTypeConfig)
}

// IsSigningError returns true if the error is a signing failure.
// Signing errors are fatal and never retried.
func IsSigningError(err error) bool {
	return errorIsType(err, ErrorTypeSigning)
}

// IsTransportError returns true if the error is a network or timeout failure.
// The caller decides whether to retry; this layer never does.
func IsTransportError(err error) bool {
	return errorIsType(err, ErrorTypeNetwork) || errorIsType(err, ErrorTypeTimeout)
}

// IsRateLimitError returns true if the venue reported a rate limit violation.
func IsRateLimitError(err error) bool {
	return errorIsType(err, ErrorTypeRateLimit)
}

// IsAuthenticationError returns true if the venue rejected the signature or key.
func IsAuthenticationError(err error) bool {
	return errorIsType(err, ErrorTypeAuthentication)
}

// IsDecodeError returns true if a response body failed to decode.
func IsDecodeError(err error) bool {
	return errorIsType(err, ErrorTypeDecode)
}

// IsTerminalError returns true if the error indicates a terminal condition
// that will not succeed on retry.
func IsTerminalError(err error) bool {
	var e *APIError
	if errors.As(err, &e) {
		switch e.Type {
		case ErrorTypeConfig, ErrorTypeSigning, ErrorTypeBadRequest,
			ErrorTypeNotFound, ErrorTypeInvalidOrder, ErrorTypeInsufficientFunds:
			return true
		}
	}
	return false
}
