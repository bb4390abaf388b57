package gst_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vishalsnw/Vyap/internal/domain"
	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/domain/gst"
)

// ──────────────────────────────────────────────────────────────────────────────
// These tests pin the money math of the whole application. If someone
// changes the pricing formula, the CGST/SGST split or the bracket set,
// they fail immediately with the exact amounts that went wrong.
// ──────────────────────────────────────────────────────────────────────────────

func item(name string, qty, rate string, pct int) entity.InvoiceItem {
	return entity.InvoiceItem{
		ProductName:   name,
		Quantity:      decimal.RequireFromString(qty),
		Rate:          decimal.RequireFromString(rate),
		GSTPercentage: pct,
	}
}

func TestPriceLineItem_KnownAmounts(t *testing.T) {
	cases := []struct {
		name     string
		qty      string
		rate     string
		pct      int
		expected string
	}{
		{"two units at 100 with 18%", "2", "100", 18, "236.00"},
		{"single unit, zero bracket", "1", "50", 0, "50.00"},
		{"three units at 20 with 5%", "3", "20", 5, "63.00"},
		{"fractional quantity (1.5 kg)", "1.5", "80", 12, "134.40"},
		{"zero quantity prices to zero", "0", "999", 28, "0.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := gst.PriceLineItem(
				decimal.RequireFromString(tc.qty),
				decimal.RequireFromString(tc.rate),
				tc.pct,
			)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, amount.StringFixed(2))
		})
	}
}

func TestPriceLineItem_RejectsOutOfBracket(t *testing.T) {
	for _, pct := range []int{-5, 1, 3, 10, 15, 20, 30, 100} {
		_, err := gst.PriceLineItem(decimal.NewFromInt(1), decimal.NewFromInt(100), pct)
		require.Error(t, err, "bracket %d must be rejected", pct)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestPriceLineItem_RejectsNegativeInputs(t *testing.T) {
	_, err := gst.PriceLineItem(decimal.NewFromInt(-1), decimal.NewFromInt(100), 18)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = gst.PriceLineItem(decimal.NewFromInt(1), decimal.NewFromInt(-100), 18)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestComputeTotals_SingleLineScenario(t *testing.T) {
	// cart = [{qty:2, rate:100, gst:18}]
	totals, err := gst.ComputeTotals([]entity.InvoiceItem{item("Cement Bag", "2", "100", 18)})
	require.NoError(t, err)

	assert.Equal(t, "200.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "36.00", totals.TaxTotal.StringFixed(2))
	assert.Equal(t, "18.00", totals.CGST.StringFixed(2))
	assert.Equal(t, "18.00", totals.SGST.StringFixed(2))
	assert.Equal(t, "0.00", totals.IGST.StringFixed(2))
	assert.Equal(t, "236.00", totals.GrandTotal.StringFixed(2))
}

func TestComputeTotals_MixedBracketScenario(t *testing.T) {
	// cart = [{qty:1, rate:50, gst:0}, {qty:3, rate:20, gst:5}]
	totals, err := gst.ComputeTotals([]entity.InvoiceItem{
		item("Exercise Book", "1", "50", 0),
		item("Pencil", "3", "20", 5),
	})
	require.NoError(t, err)

	assert.Equal(t, "110.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "3.00", totals.TaxTotal.StringFixed(2))
	assert.Equal(t, "113.00", totals.GrandTotal.StringFixed(2))
}

func TestComputeTotals_EmptyCartFails(t *testing.T) {
	_, err := gst.ComputeTotals(nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// GrandTotal == Subtotal + CGST + SGST + IGST must hold exactly,
// and CGST == SGST with IGST == 0 under the intra-state policy.
func TestComputeTotals_Invariants(t *testing.T) {
	totals, err := gst.ComputeTotals([]entity.InvoiceItem{
		item("A", "2", "100", 18),
		item("B", "1.25", "39.99", 28),
		item("C", "7", "3.33", 12),
		item("D", "1", "50", 0),
	})
	require.NoError(t, err)

	sum := totals.Subtotal.Add(totals.CGST).Add(totals.SGST).Add(totals.IGST)
	assert.True(t, totals.GrandTotal.Equal(sum),
		"grand total %s must equal subtotal+cgst+sgst+igst %s", totals.GrandTotal, sum)
	assert.True(t, totals.CGST.Equal(totals.SGST), "CGST and SGST must be equal halves")
	assert.True(t, totals.IGST.IsZero(), "IGST must be zero under the intra-state policy")
}

func TestBuildInvoice_PopulatesAndReprices(t *testing.T) {
	now := time.Date(2024, 6, 26, 12, 0, 0, 0, time.UTC)
	items := []entity.InvoiceItem{item("Cement Bag", "2", "100", 18)}
	// a stale cached amount must be overwritten, not trusted
	items[0].Amount = decimal.NewFromInt(9999)

	inv, priced, err := gst.BuildInvoice("cust-1", items, gst.TimestampNumbering("INV"), now)
	require.NoError(t, err)

	assert.Equal(t, "cust-1", inv.CustomerID)
	assert.Equal(t, "INV-1719403200000", inv.Number)
	assert.Equal(t, "236.00", inv.GrandTotal.StringFixed(2))
	assert.Equal(t, "36.00", inv.TaxTotal().StringFixed(2))
	require.Len(t, priced, 1)
	assert.Equal(t, "236.00", priced[0].Amount.StringFixed(2))
}

func TestBuildInvoice_Validation(t *testing.T) {
	now := time.Now()

	_, _, err := gst.BuildInvoice("", []entity.InvoiceItem{item("A", "1", "10", 5)}, nil, now)
	assert.ErrorIs(t, err, domain.ErrValidation, "missing customer must be rejected")

	_, _, err = gst.BuildInvoice("cust-1", nil, nil, now)
	assert.ErrorIs(t, err, domain.ErrValidation, "empty cart must be rejected")

	_, _, err = gst.BuildInvoice("cust-1", []entity.InvoiceItem{item("A", "1", "10", 7)}, nil, now)
	assert.ErrorIs(t, err, domain.ErrValidation, "out-of-bracket GST must be rejected")
}

// Identical input (number excluded) must always produce identical totals.
func TestBuildInvoice_Deterministic(t *testing.T) {
	now := time.Now()
	items := []entity.InvoiceItem{
		item("A", "2", "100", 18),
		item("B", "3", "20", 5),
	}

	inv1, _, err1 := gst.BuildInvoice("cust-1", items, gst.TimestampNumbering("INV"), now)
	inv2, _, err2 := gst.BuildInvoice("cust-1", items, gst.TimestampNumbering("INV"), now)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, inv1.Subtotal.Equal(inv2.Subtotal))
	assert.True(t, inv1.CGST.Equal(inv2.CGST))
	assert.True(t, inv1.GrandTotal.Equal(inv2.GrandTotal))
}

// ── Tax breakup ───────────────────────────────────────────────────────────────

func TestTaxBreakupByBracket_FirstSeenOrderAndMerge(t *testing.T) {
	rows, err := gst.TaxBreakupByBracket([]entity.InvoiceItem{
		item("A", "2", "100", 18),
		item("B", "3", "20", 5),
		item("C", "1", "300", 18), // same bracket as A, must merge into the first row
	})
	require.NoError(t, err)
	require.Len(t, rows, 2, "two distinct brackets, two rows")

	assert.Equal(t, 18, rows[0].GSTPercentage, "18%% was seen first")
	assert.Equal(t, "500.00", rows[0].TaxableAmount.StringFixed(2))
	assert.Equal(t, "45.00", rows[0].CGSTAmount.StringFixed(2))
	assert.Equal(t, "45.00", rows[0].SGSTAmount.StringFixed(2))
	assert.Equal(t, "90.00", rows[0].TotalTax.StringFixed(2))

	assert.Equal(t, 5, rows[1].GSTPercentage)
	assert.Equal(t, "60.00", rows[1].TaxableAmount.StringFixed(2))
	assert.Equal(t, "3.00", rows[1].TotalTax.StringFixed(2))
}

// The bracket-grouped tax must sum to the same total as the flat
// computation — exact decimal equality, the round-trip property the
// rendered breakup table depends on.
func TestTaxBreakupByBracket_SumsToTaxTotal(t *testing.T) {
	items := []entity.InvoiceItem{
		item("A", "2", "100", 18),
		item("B", "1.25", "39.99", 28),
		item("C", "7", "3.33", 12),
		item("D", "1", "50", 0),
		item("E", "4", "12.50", 18),
	}
	totals, err := gst.ComputeTotals(items)
	require.NoError(t, err)
	rows, err := gst.TaxBreakupByBracket(items)
	require.NoError(t, err)

	var sum decimal.Decimal
	for _, r := range rows {
		sum = sum.Add(r.TotalTax)
	}
	assert.True(t, sum.Equal(totals.TaxTotal),
		"breakup sum %s must equal flat tax total %s", sum, totals.TaxTotal)
}

func TestTaxBreakupByBracket_EmptyCartFails(t *testing.T) {
	_, err := gst.TaxBreakupByBracket(nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTimestampNumbering_DefaultPrefix(t *testing.T) {
	now := time.UnixMilli(1719402345123)
	assert.Equal(t, "INV-1719402345123", gst.TimestampNumbering("")(now))
	assert.Equal(t, "VY-1719402345123", gst.TimestampNumbering("VY")(now))
}
