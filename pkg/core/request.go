package core

import (
	"fmt"
	"maps"
	"net/url"
)

// Params is a set of query parameters keyed by name.
type Params map[string]any

// Request describes one API call before signing. It is constructed per call,
// consumed by the signer and transport, and never persisted.
type Request struct {
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Query   Params            `json:"query,omitempty"`
	Body    []byte            `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// NewRequest creates a request for the given HTTP method and path.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Query:   make(Params),
		Headers: make(map[string]string),
	}
}

// SetQuery adds a single query parameter and returns the request for chaining.
func (r *Request) SetQuery(key string, value any) *Request {
	if r.Query == nil {
		r.Query = make(Params)
	}
	r.Query[key] = value
	return r
}

// SetQueryParams merges the given parameters and returns the request for chaining.
func (r *Request) SetQueryParams(params Params) *Request {
	if r.Query == nil {
		r.Query = make(Params)
	}
	maps.Copy(r.Query, params)
	return r
}

// SetBody sets the exact bytes that will be transmitted. The signature is
// computed over these bytes, not over a re-serialization.
func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

// SetHeader sets an additional header and returns the request for chaining.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// FullPath returns the path with the encoded query string appended. This is
// the form that enters the canonical signed message, so encoding must match
// what the transport sends byte for byte. Keys are encoded in sorted order.
func (r *Request) FullPath() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	values := url.Values{}
	for k, v := range r.Query {
		switch val := v.(type) {
		case []string:
			for _, s := range val {
				values.Add(k, s)
			}
		case string:
			values.Add(k, val)
		default:
			values.Add(k, fmt.Sprint(val))
		}
	}
	return r.Path + "?" + values.Encode()
}
