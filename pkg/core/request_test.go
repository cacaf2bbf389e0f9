package core

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_FullPath(t *testing.T) {
	t.Run("no query", func(t *testing.T) {
		req := NewRequest(http.MethodGet, "/api/v1/crypto/trading/accounts/")
		assert.Equal(t, "/api/v1/crypto/trading/accounts/", req.FullPath())
	})

	t.Run("single param", func(t *testing.T) {
		req := NewRequest(http.MethodGet, "/api/v1/crypto/trading/trading_pairs/").
			SetQuery("symbol", "BTC-USD")
		assert.Equal(t, "/api/v1/crypto/trading/trading_pairs/?symbol=BTC-USD", req.FullPath())
	})

	t.Run("repeated param", func(t *testing.T) {
		req := NewRequest(http.MethodGet, "/api/v1/crypto/marketdata/best_bid_ask/").
			SetQuery("symbol", []string{"BTC-USD", "ETH-USD"})
		assert.Equal(t,
			"/api/v1/crypto/marketdata/best_bid_ask/?symbol=BTC-USD&symbol=ETH-USD",
			req.FullPath())
	})

	t.Run("keys sorted deterministically", func(t *testing.T) {
		req := NewRequest(http.MethodGet, "/p").
			SetQuery("side", "bid").
			SetQuery("quantity", "1").
			SetQuery("symbol", "BTC-USD")
		assert.Equal(t, "/p?quantity=1&side=bid&symbol=BTC-USD", req.FullPath())
	})

	t.Run("non-string values", func(t *testing.T) {
		req := NewRequest(http.MethodGet, "/p").SetQuery("limit", 25)
		assert.Equal(t, "/p?limit=25", req.FullPath())
	})
}

func TestRequest_Chaining(t *testing.T) {
	body := []byte(`{"symbol":"BTC-USD"}`)
	req := NewRequest(http.MethodPost, "/orders/").
		SetBody(body).
		SetHeader("x-custom", "v").
		SetQueryParams(Params{"a": "1", "b": "2"})

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, body, req.Body)
	assert.Equal(t, "v", req.Headers["x-custom"])
	assert.Len(t, req.Query, 2)
}
