package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Vishalsnw/Vyap/pkg/money"
)

func TestFormatter_IndianGrouping(t *testing.T) {
	f := money.NewFormatter("₹")

	cases := []struct {
		in       string
		expected string
	}{
		{"236", "₹236.00"},
		{"1234.5", "₹1,234.50"},
		{"123456.78", "₹1,23,456.78"},
		{"10000000", "₹1,00,00,000.00"}, // one crore
		{"0", "₹0.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, f.Amount(decimal.RequireFromString(tc.in)), "input %s", tc.in)
	}
}

func TestFormatter_RoundsAtTwoPlaces(t *testing.T) {
	f := money.NewFormatter("₹")
	// exact decimal rounding happens before display conversion
	assert.Equal(t, "₹63.98", f.Amount(decimal.RequireFromString("63.984")))
	assert.Equal(t, "₹63.99", f.Amount(decimal.RequireFromString("63.985")))
}

func TestFormatter_CustomAndDefaultSymbol(t *testing.T) {
	assert.Equal(t, "Rs.50.00", money.NewFormatter("Rs.").Amount(decimal.NewFromInt(50)))
	assert.Equal(t, "₹50.00", money.NewFormatter("").Amount(decimal.NewFromInt(50)))
}
