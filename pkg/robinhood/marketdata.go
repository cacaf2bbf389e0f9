package robinhood

import (
	"context"
	"fmt"
	"net/http"

	"robincrypto/pkg/core"
)

const (
	bestPricePath      = "/api/v1/crypto/marketdata/best_bid_ask/"
	estimatedPricePath = "/api/v1/crypto/marketdata/estimated_price/"
)

// GetBestPrice fetches the best bid/ask snapshot for one or more symbols
// (e.g. "BTC-USD"). With no symbols, the venue returns all pairs.
func (c *Client) GetBestPrice(ctx context.Context, symbols ...string) ([]core.BestPrice, error) {
	req := core.NewRequest(http.MethodGet, bestPricePath)
	if len(symbols) > 0 {
		req.SetQuery("symbol", symbols)
	}

	var result core.Page[core.BestPrice]
	if err := c.execute(ctx, req, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// GetEstimatedPrice fetches the estimated execution price for a hypothetical
// trade of the given quantity. Side is one of core.QuoteSideBid,
// core.QuoteSideAsk, or core.QuoteSideBoth.
func (c *Client) GetEstimatedPrice(ctx context.Context, symbol, side string, quantity *core.Decimal) ([]core.PriceQuote, error) {
	if symbol == "" {
		return nil, core.NewAPIError(core.ErrorTypeBadRequest, 0, "symbol is required").
			WithCode(core.ErrCodeInvalidSymbol)
	}
	switch side {
	case core.QuoteSideBid, core.QuoteSideAsk, core.QuoteSideBoth:
	default:
		return nil, core.NewAPIError(core.ErrorTypeBadRequest, 0,
			fmt.Sprintf("side must be bid, ask, or both, got %q", side)).
			WithCode(core.ErrCodeBadRequest)
	}
	if quantity == nil || quantity.Sign() <= 0 {
		return nil, core.NewAPIError(core.ErrorTypeBadRequest, 0, "quantity must be positive").
			WithCode(core.ErrCodeBadRequest)
	}

	req := core.NewRequest(http.MethodGet, estimatedPricePath)
	req.SetQuery("symbol", symbol)
	req.SetQuery("side", side)
	req.SetQuery("quantity", quantity.String())

	var result core.Page[core.PriceQuote]
	if err := c.execute(ctx, req, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}
