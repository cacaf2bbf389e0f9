package core

import (
	"github.com/cockroachdb/apd/v3"
)

// Decimal is an exact decimal value that always renders in plain notation.
// apd's default String emits GDA scientific form for small magnitudes
// ("1E-8"), which the venue does not accept; quantities like 0.00000001 BTC
// must travel as "0.00000001". All wire-facing decimal fields use this type
// so values round-trip exactly, with scale preserved.
type Decimal struct {
	apd.Decimal
}

// NewDecimal wraps an apd.Decimal value.
func NewDecimal(d *apd.Decimal) Decimal {
	return Decimal{Decimal: *d}
}

// ParseDecimal parses a decimal string. Scientific input is accepted;
// the value renders in plain notation regardless.
func ParseDecimal(s string) (*Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &Decimal{Decimal: *d}, nil
}

// String renders the value in plain decimal notation, never exponent form.
func (d Decimal) String() string {
	return d.Decimal.Text('f')
}

// MarshalText implements encoding.TextMarshaler using plain notation.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.Decimal.Text('f')), nil
}
