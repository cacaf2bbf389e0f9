package robinhood

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robincrypto/pkg/core"
)

func mustDecimal(t *testing.T, s string) *core.Decimal {
	t.Helper()
	d, err := core.ParseDecimal(s)
	require.NoError(t, err)
	return d
}

func testToken() string {
	return uuid.NewString()
}

func TestNewMarketOrder(t *testing.T) {
	token := testToken()
	params, err := NewMarketOrder("BTC-USD", core.SideBuy, token, mustDecimal(t, "0.0002"))
	require.NoError(t, err)

	assert.Equal(t, core.TypeMarket, params.Type)
	assert.Equal(t, token, params.ClientOrderID)
	require.NotNil(t, params.MarketOrderConfig)
	assert.Nil(t, params.LimitOrderConfig)
	assert.Equal(t, "0.0002", params.MarketOrderConfig.AssetQuantity.String())
}

func TestNewMarketOrder_Invalid(t *testing.T) {
	t.Run("zero quantity", func(t *testing.T) {
		_, err := NewMarketOrder("BTC-USD", core.SideBuy, testToken(), mustDecimal(t, "0"))
		assert.Error(t, err)
	})

	t.Run("nil quantity", func(t *testing.T) {
		_, err := NewMarketOrder("BTC-USD", core.SideBuy, testToken(), nil)
		assert.Error(t, err)
	})

	t.Run("empty symbol", func(t *testing.T) {
		_, err := NewMarketOrder("", core.SideBuy, testToken(), mustDecimal(t, "1"))
		assert.Error(t, err)
	})

	t.Run("client order id not a uuid", func(t *testing.T) {
		_, err := NewMarketOrder("BTC-USD", core.SideBuy, "order-1", mustDecimal(t, "1"))
		require.Error(t, err)
		assert.True(t, core.IsTerminalError(err))
	})
}

func TestNewLimitOrder(t *testing.T) {
	t.Run("asset quantity", func(t *testing.T) {
		params, err := NewLimitOrder("BTC-USD", core.SideSell, testToken(), core.LimitOrderConfig{
			AssetQuantity: mustDecimal(t, "0.5"),
			LimitPrice:    *mustDecimal(t, "42000.50"),
			TimeInForce:   "gtc",
		})
		require.NoError(t, err)
		assert.Equal(t, core.TypeLimit, params.Type)
		require.NotNil(t, params.LimitOrderConfig)
		assert.Equal(t, "gtc", params.LimitOrderConfig.TimeInForce)
	})

	t.Run("quote amount", func(t *testing.T) {
		params, err := NewLimitOrder("BTC-USD", core.SideBuy, testToken(), core.LimitOrderConfig{
			QuoteAmount: mustDecimal(t, "100"),
			LimitPrice:  *mustDecimal(t, "42000.50"),
		})
		require.NoError(t, err)
		assert.NotNil(t, params.LimitOrderConfig.QuoteAmount)
	})

	t.Run("both sizes rejected", func(t *testing.T) {
		_, err := NewLimitOrder("BTC-USD", core.SideBuy, testToken(), core.LimitOrderConfig{
			QuoteAmount:   mustDecimal(t, "100"),
			AssetQuantity: mustDecimal(t, "0.5"),
			LimitPrice:    *mustDecimal(t, "42000.50"),
		})
		assert.Error(t, err)
	})

	t.Run("neither size rejected", func(t *testing.T) {
		_, err := NewLimitOrder("BTC-USD", core.SideBuy, testToken(), core.LimitOrderConfig{
			LimitPrice: *mustDecimal(t, "42000.50"),
		})
		assert.Error(t, err)
	})

	t.Run("missing limit price", func(t *testing.T) {
		_, err := NewLimitOrder("BTC-USD", core.SideBuy, testToken(), core.LimitOrderConfig{
			AssetQuantity: mustDecimal(t, "0.5"),
		})
		assert.Error(t, err)
	})
}

func TestNewStopLossOrder(t *testing.T) {
	params, err := NewStopLossOrder("ETH-USD", core.SideSell, testToken(), core.StopLossOrderConfig{
		AssetQuantity: *mustDecimal(t, "2"),
		StopPrice:     *mustDecimal(t, "1500"),
	})
	require.NoError(t, err)
	assert.Equal(t, core.TypeStopLoss, params.Type)
	require.NotNil(t, params.StopLossOrderConfig)

	_, err = NewStopLossOrder("ETH-USD", core.SideSell, testToken(), core.StopLossOrderConfig{
		AssetQuantity: *mustDecimal(t, "2"),
	})
	assert.Error(t, err, "stop price is required")
}

func TestNewStopLimitOrder(t *testing.T) {
	params, err := NewStopLimitOrder("ETH-USD", core.SideSell, testToken(), core.StopLimitOrderConfig{
		AssetQuantity: *mustDecimal(t, "2"),
		LimitPrice:    *mustDecimal(t, "1490"),
		StopPrice:     *mustDecimal(t, "1500"),
	})
	require.NoError(t, err)
	assert.Equal(t, core.TypeStopLimit, params.Type)

	_, err = NewStopLimitOrder("ETH-USD", core.SideSell, testToken(), core.StopLimitOrderConfig{
		AssetQuantity: *mustDecimal(t, "2"),
		StopPrice:     *mustDecimal(t, "1500"),
	})
	assert.Error(t, err, "limit price is required")
}

func TestCreateOrderParams_MarshalShape(t *testing.T) {
	params, err := NewMarketOrder("BTC-USD", core.SideBuy,
		"11111111-2222-3333-4444-555555555555", mustDecimal(t, "0.0002"))
	require.NoError(t, err)

	data, err := sonic.Marshal(params)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"side":"buy"`)
	assert.Contains(t, body, `"type":"market"`)
	assert.Contains(t, body, `"asset_quantity":"0.0002"`)
	// Unpopulated variants must not appear on the wire.
	assert.NotContains(t, body, "limit_order_config")
	assert.NotContains(t, body, "stop_loss_order_config")
	assert.NotContains(t, body, "stop_limit_order_config")
}

func TestCreateOrderParams_SmallQuantityMarshalsPlain(t *testing.T) {
	params, err := NewMarketOrder("BTC-USD", core.SideBuy, testToken(), mustDecimal(t, "0.00000001"))
	require.NoError(t, err)

	data, err := sonic.Marshal(params)
	require.NoError(t, err)

	// One-satoshi orders must not serialize in exponent notation.
	assert.Contains(t, string(data), `"asset_quantity":"0.00000001"`)
	assert.NotContains(t, string(data), "1E-8")
}

func TestCreateOrderParams_ValidateAgainst(t *testing.T) {
	pair := &core.TradingPair{Symbol: "BTC-USD"}
	pair.QuantityIncrement = *mustDecimal(t, "0.0001")
	pair.PriceIncrement = *mustDecimal(t, "0.01")
	pair.MinOrderSize = *mustDecimal(t, "0.0001")

	t.Run("valid market order", func(t *testing.T) {
		params, err := NewMarketOrder("BTC-USD", core.SideBuy, testToken(), mustDecimal(t, "0.0002"))
		require.NoError(t, err)
		assert.NoError(t, params.ValidateAgainst(pair))
	})

	t.Run("quantity off increment", func(t *testing.T) {
		params, err := NewMarketOrder("BTC-USD", core.SideBuy, testToken(), mustDecimal(t, "0.00015"))
		require.NoError(t, err)
		assert.Error(t, params.ValidateAgainst(pair))
	})

	t.Run("limit price off increment", func(t *testing.T) {
		params, err := NewLimitOrder("BTC-USD", core.SideBuy, testToken(), core.LimitOrderConfig{
			AssetQuantity: mustDecimal(t, "0.0002"),
			LimitPrice:    *mustDecimal(t, "42000.505"),
		})
		require.NoError(t, err)
		assert.Error(t, params.ValidateAgainst(pair))
	})

	t.Run("stop limit fully checked", func(t *testing.T) {
		params, err := NewStopLimitOrder("BTC-USD", core.SideSell, testToken(), core.StopLimitOrderConfig{
			AssetQuantity: *mustDecimal(t, "0.0002"),
			LimitPrice:    *mustDecimal(t, "41000.00"),
			StopPrice:     *mustDecimal(t, "41500.00"),
		})
		require.NoError(t, err)
		assert.NoError(t, params.ValidateAgainst(pair))
	})

	t.Run("symbol mismatch", func(t *testing.T) {
		params, err := NewMarketOrder("ETH-USD", core.SideBuy, testToken(), mustDecimal(t, "0.0002"))
		require.NoError(t, err)
		assert.Error(t, params.ValidateAgainst(pair))
	})
}

func TestOrderFilter_Query(t *testing.T) {
	t.Run("nil filter", func(t *testing.T) {
		var filter *OrderFilter
		assert.Empty(t, filter.query())
	})

	t.Run("populated fields only", func(t *testing.T) {
		filter := &OrderFilter{
			Symbol: "BTC-USD",
			State:  "open",
			Limit:  10,
		}
		params := filter.query()
		assert.Equal(t, "BTC-USD", params["symbol"])
		assert.Equal(t, "open", params["state"])
		assert.Equal(t, 10, params["limit"])
		assert.NotContains(t, params, "side")
		assert.NotContains(t, params, "cursor")
	})
}
