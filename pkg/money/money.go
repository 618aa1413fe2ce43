package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-precision currency amount. All billing arithmetic goes
// through this type; float64 never touches a currency value.
type Money struct {
	amount decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

// New creates a Money from an integer number of currency units.
func New(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// NewFromString parses a decimal string like "107.35".
func NewFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// MustFromString parses a decimal string and panics on failure. Intended for
// constants and tests.
func MustFromString(s string) Money {
	m, err := NewFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromDecimal wraps an existing decimal value.
func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul returns m * factor.
func (m Money) Mul(factor Money) Money {
	return Money{amount: m.amount.Mul(factor.amount)}
}

// Percent returns m * (p / 100) without rounding.
func (m Money) Percent(p Money) Money {
	return Money{amount: m.amount.Mul(p.amount.Div(decimal.NewFromInt(100)))}
}

// Round2 rounds to 2 decimal places, half up. Only persisted fields are
// rounded; intermediate calculation steps keep full precision.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// Cmp compares m and other: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal reports whether m and other represent the same amount.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// String renders the amount with full stored precision.
func (m Money) String() string {
	return m.amount.String()
}

// StringFixed2 renders the amount with exactly two decimal places.
func (m Money) StringFixed2() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON renders the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.String()), nil
}

// UnmarshalJSON accepts a JSON number or numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.amount = d
	return nil
}

// Value implements driver.Valuer so Money maps to a SQL decimal column.
func (m Money) Value() (driver.Value, error) {
	return m.amount.Value()
}

// Scan implements sql.Scanner.
func (m *Money) Scan(value interface{}) error {
	return m.amount.Scan(value)
}

// GormDataType tells GORM which column type to migrate to.
func (Money) GormDataType() string {
	return "decimal(12,2)"
}
