package robinhood

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"robincrypto/pkg/core"
)

var validate = validator.New()

// CreateOrderParams is the request body for order creation. Exactly one
// config variant is populated, matching Type; the factory functions below are
// the only supported way to build one, so a mismatched discriminant/payload
// pair cannot be constructed.
type CreateOrderParams struct {
	Symbol string `json:"symbol" validate:"required"`
	// ClientOrderID is the caller-supplied idempotency token. The client
	// never generates it: resubmitting with a fresh token risks duplicate
	// orders, so the caller owns its lifecycle.
	ClientOrderID string         `json:"client_order_id" validate:"required,uuid"`
	Side          core.OrderSide `json:"side"`
	Type          core.OrderType `json:"type"`

	MarketOrderConfig    *core.MarketOrderConfig    `json:"market_order_config,omitempty"`
	LimitOrderConfig     *core.LimitOrderConfig     `json:"limit_order_config,omitempty"`
	StopLossOrderConfig  *core.StopLossOrderConfig  `json:"stop_loss_order_config,omitempty"`
	StopLimitOrderConfig *core.StopLimitOrderConfig `json:"stop_limit_order_config,omitempty"`
}

func invalidOrder(format string, args ...any) *core.APIError {
	return core.NewAPIError(core.ErrorTypeInvalidOrder, 0,
		fmt.Sprintf(format, args...)).WithCode(core.ErrCodeInvalidOrder)
}

func checkCommon(p *CreateOrderParams) error {
	if err := validate.Struct(p); err != nil {
		return invalidOrder("%v", err)
	}
	if _, err := uuid.Parse(p.ClientOrderID); err != nil {
		return invalidOrder("client_order_id must be a UUID: %v", err)
	}
	return nil
}

func positive(name string, d *core.Decimal) error {
	if d == nil || d.Sign() <= 0 {
		return invalidOrder("%s must be positive", name)
	}
	return nil
}

// NewMarketOrder builds validated parameters for a market order sized in the
// base asset.
func NewMarketOrder(symbol string, side core.OrderSide, clientOrderID string, quantity *core.Decimal) (*CreateOrderParams, error) {
	if err := positive("asset_quantity", quantity); err != nil {
		return nil, err
	}
	p := &CreateOrderParams{
		Symbol:            symbol,
		ClientOrderID:     clientOrderID,
		Side:              side,
		Type:              core.TypeMarket,
		MarketOrderConfig: &core.MarketOrderConfig{AssetQuantity: *quantity},
	}
	if err := checkCommon(p); err != nil {
		return nil, err
	}
	return p, nil
}

// NewLimitOrder builds validated parameters for a limit order. The config
// must size the order with exactly one of QuoteAmount or AssetQuantity and
// carry a positive limit price.
func NewLimitOrder(symbol string, side core.OrderSide, clientOrderID string, config core.LimitOrderConfig) (*CreateOrderParams, error) {
	if (config.QuoteAmount == nil) == (config.AssetQuantity == nil) {
		return nil, invalidOrder("limit order requires exactly one of quote_amount or asset_quantity")
	}
	if config.QuoteAmount != nil {
		if err := positive("quote_amount", config.QuoteAmount); err != nil {
			return nil, err
		}
	}
	if config.AssetQuantity != nil {
		if err := positive("asset_quantity", config.AssetQuantity); err != nil {
			return nil, err
		}
	}
	if err := positive("limit_price", &config.LimitPrice); err != nil {
		return nil, err
	}
	p := &CreateOrderParams{
		Symbol:           symbol,
		ClientOrderID:    clientOrderID,
		Side:             side,
		Type:             core.TypeLimit,
		LimitOrderConfig: &config,
	}
	if err := checkCommon(p); err != nil {
		return nil, err
	}
	return p, nil
}

// NewStopLossOrder builds validated parameters for a stop-loss order.
func NewStopLossOrder(symbol string, side core.OrderSide, clientOrderID string, config core.StopLossOrderConfig) (*CreateOrderParams, error) {
	if err := positive("asset_quantity", &config.AssetQuantity); err != nil {
		return nil, err
	}
	if err := positive("stop_price", &config.StopPrice); err != nil {
		return nil, err
	}
	p := &CreateOrderParams{
		Symbol:              symbol,
		ClientOrderID:       clientOrderID,
		Side:                side,
		Type:                core.TypeStopLoss,
		StopLossOrderConfig: &config,
	}
	if err := checkCommon(p); err != nil {
		return nil, err
	}
	return p, nil
}

// NewStopLimitOrder builds validated parameters for a stop-limit order.
func NewStopLimitOrder(symbol string, side core.OrderSide, clientOrderID string, config core.StopLimitOrderConfig) (*CreateOrderParams, error) {
	if err := positive("asset_quantity", &config.AssetQuantity); err != nil {
		return nil, err
	}
	if err := positive("limit_price", &config.LimitPrice); err != nil {
		return nil, err
	}
	if err := positive("stop_price", &config.StopPrice); err != nil {
		return nil, err
	}
	p := &CreateOrderParams{
		Symbol:               symbol,
		ClientOrderID:        clientOrderID,
		Side:                 side,
		Type:                 core.TypeStopLimit,
		StopLimitOrderConfig: &config,
	}
	if err := checkCommon(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidateAgainst checks the order's quantity and prices against a trading
// pair's increment and size constraints. Callers should refresh the pair
// before relying on the result.
func (p *CreateOrderParams) ValidateAgainst(pair *core.TradingPair) error {
	if pair.Symbol != p.Symbol {
		return invalidOrder("pair %s does not match order symbol %s", pair.Symbol, p.Symbol)
	}
	switch p.Type {
	case core.TypeMarket:
		return pair.ValidateQuantity(&p.MarketOrderConfig.AssetQuantity)
	case core.TypeLimit:
		cfg := p.LimitOrderConfig
		if cfg.AssetQuantity != nil {
			if err := pair.ValidateQuantity(cfg.AssetQuantity); err != nil {
				return err
			}
		}
		return pair.ValidatePrice(&cfg.LimitPrice)
	case core.TypeStopLoss:
		cfg := p.StopLossOrderConfig
		if err := pair.ValidateQuantity(&cfg.AssetQuantity); err != nil {
			return err
		}
		return pair.ValidatePrice(&cfg.StopPrice)
	case core.TypeStopLimit:
		cfg := p.StopLimitOrderConfig
		if err := pair.ValidateQuantity(&cfg.AssetQuantity); err != nil {
			return err
		}
		if err := pair.ValidatePrice(&cfg.LimitPrice); err != nil {
			return err
		}
		return pair.ValidatePrice(&cfg.StopPrice)
	default:
		return invalidOrder("unknown order type %d", p.Type)
	}
}

// OrderFilter holds the optional filters for listing orders. Zero values are
// omitted from the query string.
type OrderFilter struct {
	Symbol         string
	ID             string
	Side           string
	State          string
	Type           string
	CreatedAtStart string
	CreatedAtEnd   string
	UpdatedAtStart string
	UpdatedAtEnd   string
	Cursor         string
	Limit          int
}

func (f *OrderFilter) query() core.Params {
	params := make(core.Params)
	if f == nil {
		return params
	}
	set := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}
	set("symbol", f.Symbol)
	set("id", f.ID)
	set("side", f.Side)
	set("state", f.State)
	set("type", f.Type)
	set("created_at_start", f.CreatedAtStart)
	set("created_at_end", f.CreatedAtEnd)
	set("updated_at_start", f.UpdatedAtStart)
	set("updated_at_end", f.UpdatedAtEnd)
	set("cursor", f.Cursor)
	if f.Limit > 0 {
		params["limit"] = f.Limit
	}
	return params
}
