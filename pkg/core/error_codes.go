package core

// ErrorCode represents a venue-specific error identifier.
// Error codes provide a stable, machine-readable way to identify specific
// error conditions independent of the human-readable message.
type ErrorCode string

// Error code constants define standardized error identifiers.
const (
	// ErrCodeNetwork indicates a network connectivity failure.
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
	// ErrCodeTimeout indicates the request exceeded its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeRateLimit indicates the rate limit was exceeded.
	ErrCodeRateLimit ErrorCode = "RATE_LIMIT"
	// ErrCodeAuth indicates authentication or authorization failure.
	ErrCodeAuth ErrorCode = "AUTH_ERROR"
	// ErrCodeBadRequest indicates invalid request parameters.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeServerError indicates a venue-side error occurred.
	ErrCodeServerError ErrorCode = "SERVER_ERROR"
	// ErrCodeInvalidOrder indicates the order violates venue rules.
	ErrCodeInvalidOrder ErrorCode = "INVALID_ORDER"
	// ErrCodeInvalidSymbol indicates the trading pair is not recognized.
	ErrCodeInvalidSymbol ErrorCode = "INVALID_SYMBOL"
	// ErrCodeInsufficientFunds indicates the account lacks buying power.
	ErrCodeInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"

	// Configuration errors
	ErrCodeInvalidConfig      ErrorCode = "INVALID_CONFIG"
	ErrCodeNoCredentials      ErrorCode = "NO_CREDENTIALS"
	ErrCodeInvalidKeyMaterial ErrorCode = "INVALID_KEY_MATERIAL"

	// Signing errors
	ErrCodeSigningFailed ErrorCode = "SIGNING_FAILED"

	// Response decoding errors
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// Client state errors
	ErrCodeClientClosed ErrorCode = "CLIENT_CLOSED"
)
