package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body for POST /api/invoices.
// Rate may be omitted per item; the product's current selling price is
// snapshotted in that case.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	Items      []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest is one cart line in the request. Rate is a pointer
// so an explicit 0 (free-of-charge line) is distinguishable from an
// absent field.
type InvoiceItemRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  decimal.Decimal  `json:"quantity"`
	Rate      *decimal.Decimal `json:"rate,omitempty"`
}

// InvoiceResponse is a full invoice with items, for create/get responses.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name,omitempty"`
	Date         string                `json:"date"` // dd/mm/yyyy
	Subtotal     decimal.Decimal       `json:"subtotal"`
	CGST         decimal.Decimal       `json:"cgst"`
	SGST         decimal.Decimal       `json:"sgst"`
	IGST         decimal.Decimal       `json:"igst"`
	TaxTotal     decimal.Decimal       `json:"tax_total"`
	GrandTotal   decimal.Decimal       `json:"grand_total"`
	Items        []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse is one invoice line in responses.
type InvoiceItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	GSTPercentage int             `json:"gst_percentage"`
	Amount        decimal.Decimal `json:"amount"`
}

// InvoiceSummaryResponse is a list row for GET /api/invoices.
type InvoiceSummaryResponse struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	CustomerID string          `json:"customer_id"`
	Date       string          `json:"date"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// UsageResponse reports the free-tier position for the settings screen.
type UsageResponse struct {
	InvoiceCount  int  `json:"invoice_count"`
	FreeTierLimit int  `json:"free_tier_limit"`
	IsPro         bool `json:"is_pro"`
	CanCreate     bool `json:"can_create"`
}
