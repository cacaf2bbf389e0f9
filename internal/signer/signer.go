// Package signer implements the request authentication scheme: an Ed25519
// signature over a canonical message derived from the API key, timestamp,
// request path, method, and body.
package signer

import (
	"crypto/ed25519"
	"encoding/base64"
	"strconv"
	"time"

	"robincrypto/pkg/core"
)

// Venue-mandated authentication header names.
const (
	HeaderAPIKey    = "x-api-key"
	HeaderTimestamp = "x-timestamp"
	HeaderSignature = "x-signature"
)

// Identity holds the account's signing key material. It is immutable after
// construction and safe to share across concurrent requests. The private key
// is never logged or serialized.
type Identity struct {
	apiKey    string
	publicKey string
	priv      ed25519.PrivateKey
}

// NewIdentity builds an Identity from credentials. The private seed must
// decode to exactly 32 bytes or construction fails with ErrInvalidKeyMaterial.
func NewIdentity(creds *core.Credentials) (*Identity, error) {
	if creds == nil {
		return nil, core.ErrNoCredentials
	}
	seed, err := creds.Seed()
	if err != nil {
		return nil, err
	}
	return &Identity{
		apiKey:    creds.APIKey,
		publicKey: creds.PublicKey,
		priv:      ed25519.NewKeyFromSeed(seed),
	}, nil
}

// APIKey returns the public API key identifier.
func (id *Identity) APIKey() string {
	return id.apiKey
}

// PublicKey returns the public key identifier registered with the venue.
func (id *Identity) PublicKey() string {
	return id.publicKey
}

// Sign produces a deterministic Ed25519 signature over message.
func (id *Identity) Sign(message []byte) ([]byte, error) {
	if len(id.priv) != ed25519.PrivateKeySize {
		return nil, core.ErrInvalidKeyMaterial
	}
	return ed25519.Sign(id.priv, message), nil
}

// Signer builds the canonical signable message for a request and produces the
// header set the venue requires.
type Signer struct {
	identity *Identity
	// now is the clock source, injectable for deterministic tests.
	now func() time.Time
}

// New creates a Signer for the given identity.
func New(identity *Identity) *Signer {
	return &Signer{
		identity: identity,
		now:      time.Now,
	}
}

// canonicalMessage is the exact byte sequence the venue verifies:
// api_key || timestamp || path || method || body, with no delimiters.
// Any reordering or stray separator fails verification on every request.
func canonicalMessage(apiKey, timestamp, path, method string, body []byte) []byte {
	msg := make([]byte, 0, len(apiKey)+len(timestamp)+len(path)+len(method)+len(body))
	msg = append(msg, apiKey...)
	msg = append(msg, timestamp...)
	msg = append(msg, path...)
	msg = append(msg, method...)
	msg = append(msg, body...)
	return msg
}

// Headers signs a request and returns the venue's authentication headers.
// The path must include the query string when present, and body must be the
// exact bytes that will be transmitted. The timestamp is read here, directly
// before signing, so it cannot go stale behind an earlier network wait.
func (s *Signer) Headers(method, path string, body []byte) (map[string]string, error) {
	ts := strconv.FormatInt(s.now().Unix(), 10)

	msg := canonicalMessage(s.identity.APIKey(), ts, path, method, body)
	sig, err := s.identity.Sign(msg)
	if err != nil {
		return nil, core.NewAPIError(core.ErrorTypeSigning, 0, err.Error()).
			WithCode(core.ErrCodeSigningFailed)
	}

	return map[string]string{
		HeaderAPIKey:    s.identity.APIKey(),
		HeaderTimestamp: ts,
		HeaderSignature: base64.StdEncoding.EncodeToString(sig),
	}, nil
}
