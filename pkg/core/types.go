package core

import (
	"fmt"
)

// OrderSide represents the direction of an order (buy or sell).
type OrderSide int

// Order side constants define the direction of a trade.
const (
	// SideBuy indicates an order to purchase an asset.
	SideBuy OrderSide = iota
	// SideSell indicates an order to sell an asset.
	SideSell
)

// String returns the wire representation of the order side ("buy" or "sell").
// The venue transmits sides in lowercase.
func (s OrderSide) String() string {
	return [...]string{"buy", "sell"}[s]
}

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderSide.
// It accepts both lowercase and uppercase forms and rejects unknown values
// rather than defaulting.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"buy"`, `"BUY"`:
		*s = SideBuy
	case `"sell"`, `"SELL"`:
		*s = SideSell
	default:
		return fmt.Errorf("unknown order side: %s", data)
	}
	return nil
}

// OrderType represents the type of order to place on the venue.
// It is the discriminant selecting which order config variant is populated.
type OrderType int

// Order type constants define how an order is executed.
const (
	// TypeMarket executes immediately at the best available price.
	TypeMarket OrderType = iota
	// TypeLimit executes at a specified price or better.
	TypeLimit
	// TypeStopLoss triggers a market order when price reaches the stop price.
	TypeStopLoss
	// TypeStopLimit triggers a limit order when price reaches the stop price.
	TypeStopLimit
)

// String returns the wire representation of the order type.
func (t OrderType) String() string {
	return [...]string{"market", "limit", "stop_loss", "stop_limit"}[t]
}

// MarshalJSON implements json.Marshaler for OrderType.
func (t OrderType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderType.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"market"`, `"MARKET"`:
		*t = TypeMarket
	case `"limit"`, `"LIMIT"`:
		*t = TypeLimit
	case `"stop_loss"`, `"STOP_LOSS"`:
		*t = TypeStopLoss
	case `"stop_limit"`, `"STOP_LIMIT"`:
		*t = TypeStopLimit
	default:
		return fmt.Errorf("unknown order type: %s", data)
	}
	return nil
}

// OrderState represents the current state of an order. The server owns all
// state transitions; the client never mutates an order after creation.
type OrderState int

// Order state constants define the lifecycle of an order.
const (
	// StateOpen indicates the order is live on the venue.
	StateOpen OrderState = iota
	// StatePartiallyFilled indicates part of the order has executed.
	StatePartiallyFilled
	// StateFilled indicates the order has been completely executed.
	StateFilled
	// StateCanceled indicates the order has been canceled.
	StateCanceled
	// StateRejected indicates the venue rejected the order.
	StateRejected
	// StateFailed indicates the order could not be processed.
	StateFailed
)

// String returns the wire representation of the order state.
func (s OrderState) String() string {
	return [...]string{"open", "partially_filled", "filled", "canceled", "rejected", "failed"}[s]
}

// IsTerminal returns true if the order can no longer change state.
func (s OrderState) IsTerminal() bool {
	return s == StateFilled || s == StateCanceled || s == StateRejected || s == StateFailed
}

// MarshalJSON implements json.Marshaler for OrderState.
func (s OrderState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderState.
func (s *OrderState) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"open"`, `"OPEN"`:
		*s = StateOpen
	case `"partially_filled"`, `"PARTIALLY_FILLED"`:
		*s = StatePartiallyFilled
	case `"filled"`, `"FILLED"`:
		*s = StateFilled
	case `"canceled"`, `"CANCELED"`:
		*s = StateCanceled
	case `"rejected"`, `"REJECTED"`:
		*s = StateRejected
	case `"failed"`, `"FAILED"`:
		*s = StateFailed
	default:
		return fmt.Errorf("unknown order state: %s", data)
	}
	return nil
}

// Quote side values accepted by the estimated price endpoint.
const (
	QuoteSideBid  = "bid"
	QuoteSideAsk  = "ask"
	QuoteSideBoth = "both"
)

// Page is the paginated envelope the venue wraps list results in.
type Page[T any] struct {
	// Next is the cursor URL for the following page, if any.
	Next *string `json:"next"`
	// Previous is the cursor URL for the preceding page, if any.
	Previous *string `json:"previous"`
	// Results holds the items on this page.
	Results []T `json:"results"`
}

// TradingPair describes a tradable symbol (e.g. BTC-USD) together with its
// increment and size constraints. All decimal fields arrive and leave the
// wire as strings; they are never represented as binary floats.
type TradingPair struct {
	// Symbol is the pair identifier, e.g. "BTC-USD".
	Symbol string `json:"symbol"`
	// AssetCode is the base asset, e.g. "BTC".
	AssetCode string `json:"asset_code"`
	// QuoteCode is the quote currency, e.g. "USD".
	QuoteCode string `json:"quote_code"`
	// QuantityIncrement is the smallest legal step for order quantity.
	QuantityIncrement Decimal `json:"asset_increment"`
	// PriceIncrement is the smallest legal step for limit/stop prices.
	PriceIncrement Decimal `json:"quote_increment"`
	// MinOrderSize is the smallest quantity the venue accepts.
	MinOrderSize Decimal `json:"min_order_size"`
	// MaxOrderSize is the largest quantity the venue accepts.
	MaxOrderSize Decimal `json:"max_order_size"`
	// Status is the venue trading status for this pair, e.g. "tradable".
	Status string `json:"status"`
}

// Holding is a single asset position for the account.
type Holding struct {
	AccountNumber string `json:"account_number"`
	// AssetCode is the held asset, e.g. "BTC".
	AssetCode string `json:"asset_code"`
	// TotalQuantity is the full position size.
	TotalQuantity Decimal `json:"total_quantity"`
	// QuantityAvailable is the portion not locked by open orders.
	QuantityAvailable Decimal `json:"quantity_available_for_trading"`
	// QuantityHeldForOrders is the portion reserved by open orders.
	QuantityHeldForOrders Decimal `json:"quantity_held_for_orders"`
}

// Account holds basic account information such as buying power.
type Account struct {
	AccountNumber       string  `json:"account_number"`
	Status              string  `json:"status"`
	BuyingPower         Decimal `json:"buying_power"`
	BuyingPowerCurrency string  `json:"buying_power_currency"`
}

// BestPrice is a best bid/ask snapshot for a symbol.
type BestPrice struct {
	Symbol                   string  `json:"symbol"`
	Price                    Decimal `json:"price"`
	BidInclusiveOfSellSpread Decimal `json:"bid_inclusive_of_sell_spread"`
	SellSpread               Decimal `json:"sell_spread"`
	AskInclusiveOfBuySpread  Decimal `json:"ask_inclusive_of_buy_spread"`
	BuySpread                Decimal `json:"buy_spread"`
	Timestamp                string  `json:"timestamp"`
}

// PriceQuote is an estimated execution price for a hypothetical trade of a
// given quantity.
type PriceQuote struct {
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"`
	Price    Decimal `json:"price"`
	Quantity Decimal `json:"quantity"`
	// Spread fields may be absent depending on the requested side.
	BidInclusiveOfSellSpread *Decimal `json:"bid_inclusive_of_sell_spread,omitempty"`
	SellSpread               *Decimal `json:"sell_spread,omitempty"`
	AskInclusiveOfBuySpread  *Decimal `json:"ask_inclusive_of_buy_spread,omitempty"`
	BuySpread                *Decimal `json:"buy_spread,omitempty"`
	Timestamp                string   `json:"timestamp"`
}

// Execution is a single fill of an order.
type Execution struct {
	EffectivePrice Decimal `json:"effective_price"`
	Quantity       Decimal `json:"quantity"`
	Timestamp      string  `json:"timestamp"`
}

// MarketOrderConfig holds the parameters for a market order.
type MarketOrderConfig struct {
	AssetQuantity Decimal `json:"asset_quantity"`
}

// LimitOrderConfig holds the parameters for a limit order.
// Exactly one of QuoteAmount or AssetQuantity sizes the order.
type LimitOrderConfig struct {
	QuoteAmount   *Decimal `json:"quote_amount,omitempty"`
	AssetQuantity *Decimal `json:"asset_quantity,omitempty"`
	LimitPrice    Decimal  `json:"limit_price"`
	TimeInForce   string   `json:"time_in_force,omitempty"`
}

// StopLossOrderConfig holds the parameters for a stop-loss order.
type StopLossOrderConfig struct {
	AssetQuantity Decimal `json:"asset_quantity"`
	StopPrice     Decimal `json:"stop_price"`
	TimeInForce   string  `json:"time_in_force,omitempty"`
}

// StopLimitOrderConfig holds the parameters for a stop-limit order.
type StopLimitOrderConfig struct {
	AssetQuantity Decimal `json:"asset_quantity"`
	LimitPrice    Decimal `json:"limit_price"`
	StopPrice     Decimal `json:"stop_price"`
	TimeInForce   string  `json:"time_in_force,omitempty"`
}

// Order is a crypto order as returned by the venue. Exactly one of the
// config fields is populated, selected by Type; ValidateConfig enforces the
// pairing. Subsequent reads replace the whole value, the client never
// mutates an order locally.
type Order struct {
	// ID is the venue-assigned order identifier (UUID).
	ID string `json:"id"`
	// ClientOrderID is the caller-supplied idempotency token (UUID).
	ClientOrderID string `json:"client_order_id"`
	AccountNumber string `json:"account_number"`
	Symbol        string `json:"symbol"`
	Side          OrderSide  `json:"side"`
	Type          OrderType  `json:"type"`
	State         OrderState `json:"state"`
	// AveragePrice may be absent until the order has fills.
	AveragePrice        *Decimal    `json:"average_price,omitempty"`
	FilledAssetQuantity Decimal     `json:"filled_asset_quantity"`
	Executions          []Execution `json:"executions"`
	CreatedAt           string      `json:"created_at"`
	UpdatedAt           string      `json:"updated_at"`

	MarketOrderConfig    *MarketOrderConfig    `json:"market_order_config,omitempty"`
	LimitOrderConfig     *LimitOrderConfig     `json:"limit_order_config,omitempty"`
	StopLossOrderConfig  *StopLossOrderConfig  `json:"stop_loss_order_config,omitempty"`
	StopLimitOrderConfig *StopLimitOrderConfig `json:"stop_limit_order_config,omitempty"`
}

// ValidateConfig verifies that the config payload matching Type is populated
// and that no other variant is. A mismatched discriminant/payload pair is
// reported rather than silently accepted.
func (o *Order) ValidateConfig() error {
	populated := 0
	for _, set := range []bool{
		o.MarketOrderConfig != nil,
		o.LimitOrderConfig != nil,
		o.StopLossOrderConfig != nil,
		o.StopLimitOrderConfig != nil,
	} {
		if set {
			populated++
		}
	}
	if populated != 1 {
		return fmt.Errorf("order %s: expected exactly one order config, got %d", o.ID, populated)
	}

	var ok bool
	switch o.Type {
	case TypeMarket:
		ok = o.MarketOrderConfig != nil
	case TypeLimit:
		ok = o.LimitOrderConfig != nil
	case TypeStopLoss:
		ok = o.StopLossOrderConfig != nil
	case TypeStopLimit:
		ok = o.StopLimitOrderConfig != nil
	default:
		return fmt.Errorf("order %s: unknown order type %d", o.ID, o.Type)
	}
	if !ok {
		return fmt.Errorf("order %s: %s order carries a different config variant", o.ID, o.Type)
	}
	return nil
}
