// Package types provides common value types shared across the domain.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is a fixed-point stock quantity with 4 decimal places (scale = 1e4).
//
// Stock is accumulated by summing many small movements; a binary float would
// drift over long histories. Fixed-point int64 keeps accumulation exact and
// maps directly onto Postgres NUMERIC(15,4) / BIGINT storage.
type Quantity int64

// QuantityScale is the fixed-point denominator.
const QuantityScale int64 = 10_000

// quantityExp is the decimal exponent matching QuantityScale.
const quantityExp int32 = -4

// NewQuantityFromDecimal converts an exact decimal to fixed-point, truncating
// digits beyond the 4th decimal place.
func NewQuantityFromDecimal(d decimal.Decimal) Quantity {
	return Quantity(d.Truncate(-quantityExp).Shift(-quantityExp).IntPart())
}

// ParseQuantity parses a decimal string ("12", "0.25", "-3.5") to fixed-point.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse quantity: %w", err)
	}
	return NewQuantityFromDecimal(d), nil
}

// MustQuantity parses a decimal string, panicking on error. Use for constants
// and tests only.
func MustQuantity(s string) Quantity {
	q, err := ParseQuantity(s)
	if err != nil {
		panic(err)
	}
	return q
}

// NewQuantityFromInt64Scaled wraps an already-scaled integer.
func NewQuantityFromInt64Scaled(v int64) Quantity { return Quantity(v) }

// Int64Scaled returns the raw scaled integer (for BIGINT storage).
func (q Quantity) Int64Scaled() int64 { return int64(q) }

// Decimal returns the exact decimal value.
func (q Quantity) Decimal() decimal.Decimal {
	return decimal.New(int64(q), quantityExp)
}

// Float64 returns an approximate float value for display only.
func (q Quantity) Float64() float64 {
	f, _ := q.Decimal().Float64()
	return f
}

func (q Quantity) IsZero() bool { return q == 0 }

func (q Quantity) IsPositive() bool { return q > 0 }

func (q Quantity) IsNegative() bool { return q < 0 }

func (q Quantity) Neg() Quantity { return -q }

func (q Quantity) Abs() Quantity {
	if q < 0 {
		return -q
	}
	return q
}

// Add returns q + other. Addition of scaled integers is exact.
func (q Quantity) Add(other Quantity) Quantity { return q + other }

// Sub returns q - other.
func (q Quantity) Sub(other Quantity) Quantity { return q - other }

// String returns the canonical decimal representation without trailing zeros.
func (q Quantity) String() string {
	return q.Decimal().String()
}

// MarshalJSON encodes Quantity as a JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.Decimal().String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*q = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseQuantity(s)
		if err != nil {
			return err
		}
		*q = parsed
		return nil
	}

	parsed, err := ParseQuantity(string(data))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
