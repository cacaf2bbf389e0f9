package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:      baseURL,
		Timeout:      5 * time.Second,
		MaxRetries:   0,
		RetryWaitMin: 10 * time.Millisecond,
		RetryWaitMax: 100 * time.Millisecond,
	}
}

func TestClient_Do_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/pairs/?symbol=BTC-USD", r.URL.RequestURI())
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	defer client.Close()

	resp, err := client.Do(context.Background(), http.MethodGet,
		"/pairs/?symbol=BTC-USD", map[string]string{"x-api-key": "key"}, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.False(t, resp.IsError())
	assert.JSONEq(t, `{"results":[]}`, string(resp.Body))
}

func TestClient_Do_PostSendsExactBytes(t *testing.T) {
	// The signature is computed over these bytes, so the transport must not
	// re-encode them.
	body := []byte(`{"symbol":"BTC-USD","client_order_id":"abc"}`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, body, received)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"o1"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	defer client.Close()

	resp, err := client.Do(context.Background(), http.MethodPost, "/orders/", nil, body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestClient_Do_ErrorStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"invalid_quantity"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	defer client.Close()

	// Venue-level errors are the executor's concern; transport only reports
	// dispatch failures.
	resp, err := client.Do(context.Background(), http.MethodGet, "/p", nil, nil)
	require.NoError(t, err)
	assert.True(t, resp.IsError())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClient_Do_NetworkFailure(t *testing.T) {
	client := NewClient(testConfig("http://127.0.0.1:1"), zerolog.Nop())
	defer client.Close()

	_, err := client.Do(context.Background(), http.MethodGet, "/p", nil, nil)
	assert.Error(t, err)
}

func TestClient_Do_UnsupportedMethod(t *testing.T) {
	client := NewClient(testConfig("http://localhost"), zerolog.Nop())
	defer client.Close()

	_, err := client.Do(context.Background(), http.MethodPatch, "/p", nil, nil)
	assert.Error(t, err)
}

func TestClient_Closed(t *testing.T) {
	client := NewClient(testConfig("http://localhost"), zerolog.Nop())
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Do(context.Background(), http.MethodGet, "/p", nil, nil)
	assert.Error(t, err)
}

func TestResponse_Unmarshal(t *testing.T) {
	resp := &Response{StatusCode: 200, Body: []byte(`{"symbol":"BTC-USD"}`)}

	var out struct {
		Symbol string `json:"symbol"`
	}
	require.NoError(t, resp.Unmarshal(&out))
	assert.Equal(t, "BTC-USD", out.Symbol)
}
