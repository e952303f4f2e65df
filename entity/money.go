package entity

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point currency amount. It stores as a 2-decimal string in
// the database and serializes as a JSON string with exactly two fractional
// digits. Rounding is half away from zero at every 2-decimal boundary.
type Money struct {
	dec decimal.Decimal
}

var (
	// TaxRate is applied on cart subtotals.
	TaxRate = decimal.NewFromFloat(0.05)
	// DeliveryFee is the flat per-order delivery charge.
	DeliveryFee = NewMoneyFromInt(40)
)

func NewMoney(d decimal.Decimal) Money {
	return Money{dec: d.Round(2)}
}

func NewMoneyFromInt(units int64) Money {
	return Money{dec: decimal.NewFromInt(units)}
}

// NewMoneyFromString parses amounts like "149.50".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewMoney(d), nil
}

func (m Money) Decimal() decimal.Decimal { return m.dec }

func (m Money) Add(o Money) Money {
	return NewMoney(m.dec.Add(o.dec))
}

// MulInt returns the line total for a quantity of m-priced units.
func (m Money) MulInt(qty int) Money {
	return NewMoney(m.dec.Mul(decimal.NewFromInt(int64(qty))))
}

// MulRate applies a fractional rate (e.g. a tax rate) and rounds to 2 decimals.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return NewMoney(m.dec.Mul(rate))
}

func (m Money) Equal(o Money) bool { return m.dec.Equal(o.dec) }

func (m Money) IsZero() bool { return m.dec.IsZero() }

func (m Money) String() string { return m.dec.StringFixed(2) }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.dec.StringFixed(2))), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*m = Money{}
		return nil
	}
	parsed, err := NewMoneyFromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.dec.StringFixed(2), nil
}

func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Money{}
		return nil
	case string:
		parsed, err := NewMoneyFromString(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case []byte:
		parsed, err := NewMoneyFromString(string(v))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case float64:
		*m = NewMoney(decimal.NewFromFloat(v))
		return nil
	case int64:
		*m = NewMoneyFromInt(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Money", src)
	}
}
