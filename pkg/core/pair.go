package core

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// decimalCtx is used for exact remainder arithmetic. 50 digits covers any
// quantity/increment combination the venue produces.
var decimalCtx = apd.BaseContext.WithPrecision(50)

// isMultipleOf reports whether value is an exact integer multiple of step,
// computed with exact-decimal remainder arithmetic. Binary float modulo would
// produce false negatives for common increments like 0.0001.
func isMultipleOf(value, step *Decimal) (bool, error) {
	if step.Sign() <= 0 {
		return false, fmt.Errorf("increment must be strictly positive, got %s", step)
	}
	var rem apd.Decimal
	if _, err := decimalCtx.Rem(&rem, &value.Decimal, &step.Decimal); err != nil {
		return false, fmt.Errorf("remainder %s mod %s: %w", value, step, err)
	}
	return rem.IsZero(), nil
}

// ValidateQuantity decides whether an order quantity is legal for this pair:
// it must be strictly positive, at least MinOrderSize, and an exact integer
// multiple of QuantityIncrement. Pure function; callers are responsible for
// refreshing pair data before relying on the result.
func (p *TradingPair) ValidateQuantity(quantity *Decimal) error {
	if quantity == nil || quantity.Sign() <= 0 {
		return NewAPIError(ErrorTypeInvalidOrder, 0,
			fmt.Sprintf("%s: quantity must be positive", p.Symbol)).WithCode(ErrCodeInvalidOrder)
	}
	if quantity.Cmp(&p.MinOrderSize.Decimal) < 0 {
		return NewAPIError(ErrorTypeInvalidOrder, 0,
			fmt.Sprintf("%s: quantity %s below minimum order size %s",
				p.Symbol, quantity, &p.MinOrderSize)).WithCode(ErrCodeInvalidOrder)
	}
	ok, err := isMultipleOf(quantity, &p.QuantityIncrement)
	if err != nil {
		return NewAPIError(ErrorTypeInvalidOrder, 0,
			fmt.Sprintf("%s: %v", p.Symbol, err)).WithCode(ErrCodeInvalidOrder)
	}
	if !ok {
		return NewAPIError(ErrorTypeInvalidOrder, 0,
			fmt.Sprintf("%s: quantity %s is not a multiple of increment %s",
				p.Symbol, quantity, &p.QuantityIncrement)).WithCode(ErrCodeInvalidOrder)
	}
	return nil
}

// ValidatePrice decides whether a limit or stop price is legal for this pair:
// strictly positive and an exact integer multiple of PriceIncrement.
func (p *TradingPair) ValidatePrice(price *Decimal) error {
	if price == nil || price.Sign() <= 0 {
		return NewAPIError(ErrorTypeInvalidOrder, 0,
			fmt.Sprintf("%s: price must be positive", p.Symbol)).WithCode(ErrCodeInvalidOrder)
	}
	ok, err := isMultipleOf(price, &p.PriceIncrement)
	if err != nil {
		return NewAPIError(ErrorTypeInvalidOrder, 0,
			fmt.Sprintf("%s: %v", p.Symbol, err)).WithCode(ErrCodeInvalidOrder)
	}
	if !ok {
		return NewAPIError(ErrorTypeInvalidOrder, 0,
			fmt.Sprintf("%s: price %s is not a multiple of increment %s",
				p.Symbol, price, &p.PriceIncrement)).WithCode(ErrCodeInvalidOrder)
	}
	return nil
}

// CheckValidTrade reports whether a proposed trade quantity passes
// ValidateQuantity. It performs no I/O.
func (p *TradingPair) CheckValidTrade(quantity *Decimal) bool {
	return p.ValidateQuantity(quantity) == nil
}
