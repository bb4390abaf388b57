package entity

import "github.com/shopspring/decimal"

// InvoiceItem is one line of an invoice. ProductName and Rate are a
// snapshot taken at invoice creation; the live Product record may change
// or be deleted afterwards without affecting issued invoices.
//
// Amount is cached for persistence and display but is always derived as
// Quantity × Rate × (1 + GSTPercentage/100); quantity, rate and bracket
// remain the source of truth.
type InvoiceItem struct {
	ID            string
	InvoiceID     string
	ProductID     string
	ProductName   string
	Quantity      decimal.Decimal
	Rate          decimal.Decimal
	GSTPercentage int
	Amount        decimal.Decimal
}
