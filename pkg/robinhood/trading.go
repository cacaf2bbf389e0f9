package robinhood

import (
	"context"
	"net/http"

	"robincrypto/pkg/core"
)

const (
	tradingPairsPath = "/api/v1/crypto/trading/trading_pairs/"
	holdingsPath     = "/api/v1/crypto/trading/holdings/"
	accountPath      = "/api/v1/crypto/trading/accounts/"
)

// GetTradingPairs lists supported trading pairs, optionally filtered by
// symbol (e.g. "BTC-USD"). With no symbols, all pairs are returned.
func (c *Client) GetTradingPairs(ctx context.Context, symbols ...string) (*core.Page[core.TradingPair], error) {
	req := core.NewRequest(http.MethodGet, tradingPairsPath)
	if len(symbols) > 0 {
		req.SetQuery("symbol", symbols)
	}

	var result core.Page[core.TradingPair]
	if err := c.execute(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetHoldings lists the account's holdings, optionally filtered by asset
// code (e.g. "BTC"). With no codes, all holdings are returned.
func (c *Client) GetHoldings(ctx context.Context, assetCodes ...string) (*core.Page[core.Holding], error) {
	req := core.NewRequest(http.MethodGet, holdingsPath)
	if len(assetCodes) > 0 {
		req.SetQuery("asset_code", assetCodes)
	}

	var result core.Page[core.Holding]
	if err := c.execute(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAccount fetches the crypto account's basic information, including
// buying power.
func (c *Client) GetAccount(ctx context.Context) (*core.Account, error) {
	req := core.NewRequest(http.MethodGet, accountPath)

	var result core.Account
	if err := c.execute(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
