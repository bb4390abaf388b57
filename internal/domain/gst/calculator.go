// Package gst implements the invoice pricing and tax-breakup rules for
// Indian GST (Goods & Services Tax). All arithmetic is exact decimal;
// rounding to two places happens only at presentation, never here, so
// totals cannot drift across many lines.
//
// Tax jurisdiction policy is fixed to intra-state sales: the tax amount
// is split evenly into CGST and SGST and IGST is always zero. There is
// deliberately no configuration path that changes this.
package gst

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vishalsnw/Vyap/internal/domain"
	"github.com/Vishalsnw/Vyap/internal/domain/entity"
)

// Brackets are the only GST percentages the law allows on an invoice line.
var Brackets = []int{0, 5, 12, 18, 28}

var one = decimal.NewFromInt(1)
var two = decimal.NewFromInt(2)
var oneHundred = decimal.NewFromInt(100)

// ValidBracket reports whether pct is one of the allowed GST brackets.
func ValidBracket(pct int) bool {
	for _, b := range Brackets {
		if b == pct {
			return true
		}
	}
	return false
}

// PriceLineItem computes the tax-inclusive amount of one line:
// quantity × rate × (1 + gst/100). Out-of-bracket percentages and
// negative quantities or rates are rejected with domain.ErrValidation.
func PriceLineItem(quantity, rate decimal.Decimal, gstPercentage int) (decimal.Decimal, error) {
	if quantity.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: rate must not be negative", domain.ErrValidation)
	}
	if !ValidBracket(gstPercentage) {
		return decimal.Zero, fmt.Errorf("%w: %d%% is not a GST bracket (allowed: 0, 5, 12, 18, 28)", domain.ErrValidation, gstPercentage)
	}
	factor := one.Add(decimal.NewFromInt(int64(gstPercentage)).Div(oneHundred))
	return quantity.Mul(rate).Mul(factor), nil
}

// Totals holds the invoice-level amounts derived from a cart of lines.
type Totals struct {
	Subtotal   decimal.Decimal // Σ quantity × rate
	TaxTotal   decimal.Decimal // GrandTotal − Subtotal
	CGST       decimal.Decimal // TaxTotal / 2
	SGST       decimal.Decimal // TaxTotal / 2
	IGST       decimal.Decimal // always zero (intra-state policy)
	GrandTotal decimal.Decimal // Σ line amounts
}

// ComputeTotals prices every line and accumulates invoice totals.
// The cart must be non-empty.
func ComputeTotals(items []entity.InvoiceItem) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, fmt.Errorf("%w: invoice needs at least one line item", domain.ErrValidation)
	}
	var subtotal, grandTotal decimal.Decimal
	for i := range items {
		amount, err := PriceLineItem(items[i].Quantity, items[i].Rate, items[i].GSTPercentage)
		if err != nil {
			return Totals{}, fmt.Errorf("line %d (%s): %w", i+1, items[i].ProductName, err)
		}
		subtotal = subtotal.Add(items[i].Quantity.Mul(items[i].Rate))
		grandTotal = grandTotal.Add(amount)
	}
	taxTotal := grandTotal.Sub(subtotal)
	half := taxTotal.Div(two)
	return Totals{
		Subtotal:   subtotal,
		TaxTotal:   taxTotal,
		CGST:       half,
		SGST:       half,
		IGST:       decimal.Zero,
		GrandTotal: grandTotal,
	}, nil
}

// NumberingPolicy generates a human-readable invoice number. The default
// timestamp policy is millisecond-resolution; collisions are possible in
// theory but out of scope for a single-user, low-frequency writer.
type NumberingPolicy func(now time.Time) string

// TimestampNumbering returns the default policy: "<prefix>-<epoch millis>".
func TimestampNumbering(prefix string) NumberingPolicy {
	if prefix == "" {
		prefix = "INV"
	}
	return func(now time.Time) string {
		return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
	}
}

// BuildInvoice turns a customer and a non-empty cart into a fully priced,
// not-yet-persisted invoice. Line amounts are recomputed from quantity,
// rate and bracket; any cached Amount on the input is ignored.
//
// Holds by construction: GrandTotal == Subtotal + CGST + SGST + IGST,
// CGST == SGST, IGST == 0.
func BuildInvoice(customerID string, items []entity.InvoiceItem, numbering NumberingPolicy, now time.Time) (*entity.Invoice, []entity.InvoiceItem, error) {
	if customerID == "" {
		return nil, nil, fmt.Errorf("%w: customer is required", domain.ErrValidation)
	}
	totals, err := ComputeTotals(items)
	if err != nil {
		return nil, nil, err
	}
	if numbering == nil {
		numbering = TimestampNumbering("INV")
	}
	priced := make([]entity.InvoiceItem, len(items))
	for i := range items {
		priced[i] = items[i]
		// error already ruled out by ComputeTotals
		priced[i].Amount, _ = PriceLineItem(items[i].Quantity, items[i].Rate, items[i].GSTPercentage)
	}
	inv := &entity.Invoice{
		Number:     numbering(now),
		CustomerID: customerID,
		Date:       now,
		Subtotal:   totals.Subtotal,
		CGST:       totals.CGST,
		SGST:       totals.SGST,
		IGST:       totals.IGST,
		GrandTotal: totals.GrandTotal,
		CreatedAt:  now,
	}
	return inv, priced, nil
}
