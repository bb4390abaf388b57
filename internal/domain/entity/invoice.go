package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the header of an issued tax invoice. Invoices are append-only:
// once created they are never edited, and their items carry a snapshot of
// the product name and rate so later product edits do not rewrite history.
//
// Tax split policy is intra-state only: CGST == SGST == TaxTotal/2 and
// IGST is always zero. This is a documented product limitation, not a bug.
type Invoice struct {
	ID         string
	Number     string // unique, human readable, e.g. INV-1719402345123
	CustomerID string
	Date       time.Time
	Subtotal   decimal.Decimal // Σ quantity × rate over all items
	CGST       decimal.Decimal
	SGST       decimal.Decimal
	IGST       decimal.Decimal
	GrandTotal decimal.Decimal // Subtotal + CGST + SGST + IGST, exact
	CreatedAt  time.Time
}

// TaxTotal is the combined GST amount of the invoice.
func (i *Invoice) TaxTotal() decimal.Decimal {
	return i.CGST.Add(i.SGST).Add(i.IGST)
}
