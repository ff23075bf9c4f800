package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int64 // scaled
	}{
		{"0", 0},
		{"1", 10_000},
		{"20", 200_000},
		{"0.5", 5_000},
		{"0.25", 2_500},
		{"-3.5", -35_000},
		{"12.3456", 123_456},
		{"12.34567", 123_456}, // extra digits truncated
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := ParseQuantity(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Int64Scaled())
		})
	}
}

func TestParseQuantity_Invalid(t *testing.T) {
	_, err := ParseQuantity("not-a-number")
	assert.Error(t, err)
}

func TestQuantity_String(t *testing.T) {
	assert.Equal(t, "20", MustQuantity("20").String())
	assert.Equal(t, "0.25", MustQuantity("0.25").String())
	assert.Equal(t, "-3.5", MustQuantity("-3.5").String())
}

func TestQuantity_JSONRoundTrip(t *testing.T) {
	q := MustQuantity("15.75")

	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, "15.75", string(data))

	var back Quantity
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, q, back)

	// Quoted form is accepted too.
	require.NoError(t, json.Unmarshal([]byte(`"2.5"`), &back))
	assert.Equal(t, MustQuantity("2.5"), back)
}

func TestQuantity_ExactAccumulation(t *testing.T) {
	// 0.1 added ten thousand times is exactly 1000 in fixed-point.
	var total Quantity
	tenth := MustQuantity("0.1")
	for i := 0; i < 10_000; i++ {
		total = total.Add(tenth)
	}
	assert.Equal(t, MustQuantity("1000"), total)
}

func TestNewQuantityFromDecimal(t *testing.T) {
	d := decimal.RequireFromString("7.125")
	assert.Equal(t, MustQuantity("7.125"), NewQuantityFromDecimal(d))
}
