package gst

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Vishalsnw/Vyap/internal/domain"
	"github.com/Vishalsnw/Vyap/internal/domain/entity"
)

// BracketBreakup is one row of the per-bracket GST summary printed on the
// invoice document: the taxable base of all lines in the bracket and its
// CGST/SGST split.
type BracketBreakup struct {
	GSTPercentage int
	TaxableAmount decimal.Decimal // Σ quantity × rate within the bracket
	CGSTAmount    decimal.Decimal // TaxableAmount × (pct/2) / 100
	SGSTAmount    decimal.Decimal // == CGSTAmount
	TotalTax      decimal.Decimal // CGSTAmount + SGSTAmount
}

// TaxBreakupByBracket groups the cart by GST bracket. The result is a
// slice, not a map: row order is the first-seen order of each bracket in
// the cart, so the rendered document is reproducible for the same input.
//
// Summed over all rows, TotalTax equals the TaxTotal of ComputeTotals for
// the same cart — exact decimal equality, no rounding involved.
func TaxBreakupByBracket(items []entity.InvoiceItem) ([]BracketBreakup, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: invoice needs at least one line item", domain.ErrValidation)
	}
	var rows []BracketBreakup
	index := make(map[int]int, len(Brackets))
	for i := range items {
		if items[i].Quantity.IsNegative() || items[i].Rate.IsNegative() {
			return nil, fmt.Errorf("%w: quantity and rate must not be negative", domain.ErrValidation)
		}
		pct := items[i].GSTPercentage
		if !ValidBracket(pct) {
			return nil, fmt.Errorf("%w: %d%% is not a GST bracket", domain.ErrValidation, pct)
		}
		pos, ok := index[pct]
		if !ok {
			pos = len(rows)
			index[pct] = pos
			rows = append(rows, BracketBreakup{GSTPercentage: pct})
		}
		rows[pos].TaxableAmount = rows[pos].TaxableAmount.Add(items[i].Quantity.Mul(items[i].Rate))
	}
	twoHundred := decimal.NewFromInt(200)
	for i := range rows {
		// half the bracket rate on the taxable base: taxable × pct / 200
		half := rows[i].TaxableAmount.Mul(decimal.NewFromInt(int64(rows[i].GSTPercentage))).Div(twoHundred)
		rows[i].CGSTAmount = half
		rows[i].SGSTAmount = half
		rows[i].TotalTax = half.Mul(two)
	}
	return rows, nil
}
