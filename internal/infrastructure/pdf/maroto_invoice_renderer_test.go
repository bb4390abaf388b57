package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/pkg/money"
)

func sampleInvoiceData() (*entity.BusinessProfile, *entity.Customer, *entity.Invoice, []*entity.InvoiceItem) {
	profile := &entity.BusinessProfile{
		ID:      1,
		Name:    "Sharma Electricals",
		Address: "12 MG Road, Pune, Maharashtra",
		Phone:   "9876543210",
		GSTIN:   "27AAAPL1234C1ZV",
	}
	customer := &entity.Customer{
		ID:      "c-1",
		Name:    "Patel Hardware",
		Address: "4 Station Road, Pune",
		Phone:   "9123456780",
		GSTIN:   "27BBBPL5678D1ZW",
	}
	items := []*entity.InvoiceItem{
		{
			ID: "it-1", InvoiceID: "inv-1", ProductID: "p-1",
			ProductName:   "Copper Wire 1.5mm (90m)",
			Quantity:      decimal.NewFromInt(2),
			Rate:          decimal.NewFromInt(100),
			GSTPercentage: 18,
			Amount:        decimal.RequireFromString("236"),
		},
		{
			ID: "it-2", InvoiceID: "inv-1", ProductID: "p-2",
			ProductName:   "Switch Board",
			Quantity:      decimal.NewFromInt(3),
			Rate:          decimal.NewFromInt(20),
			GSTPercentage: 5,
			Amount:        decimal.RequireFromString("63"),
		},
	}
	invoice := &entity.Invoice{
		ID:         "inv-1",
		Number:     "INV-1719403200000",
		CustomerID: "c-1",
		Date:       time.Date(2024, 6, 26, 12, 0, 0, 0, time.UTC),
		Subtotal:   decimal.RequireFromString("260"),
		CGST:       decimal.RequireFromString("19.5"),
		SGST:       decimal.RequireFromString("19.5"),
		IGST:       decimal.Zero,
		GrandTotal: decimal.RequireFromString("299"),
		CreatedAt:  time.Date(2024, 6, 26, 12, 0, 0, 0, time.UTC),
	}
	return profile, customer, invoice, items
}

func TestGenerateInvoicePDF(t *testing.T) {
	g := NewMarotoInvoiceRenderer(money.NewFormatter("₹"))
	profile, customer, invoice, items := sampleInvoiceData()

	pdfBytes, err := g.GenerateInvoicePDF(context.Background(), profile, customer, invoice, items)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerateInvoicePDF_MissingImagesAreSkipped(t *testing.T) {
	g := NewMarotoInvoiceRenderer(money.NewFormatter("₹"))
	profile, customer, invoice, items := sampleInvoiceData()
	profile.LogoPath = "/nonexistent/logo.png"
	profile.SignaturePath = "/nonexistent/signature.png"

	pdfBytes, err := g.GenerateInvoicePDF(context.Background(), profile, customer, invoice, items)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}

func TestGenerateInvoicePDF_EmptyProfileStillRenders(t *testing.T) {
	g := NewMarotoInvoiceRenderer(money.NewFormatter(""))
	_, customer, invoice, items := sampleInvoiceData()

	pdfBytes, err := g.GenerateInvoicePDF(context.Background(), &entity.BusinessProfile{}, customer, invoice, items)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}

func TestGenerateInvoicePDF_NoItemsFails(t *testing.T) {
	g := NewMarotoInvoiceRenderer(money.NewFormatter("₹"))
	profile, customer, invoice, _ := sampleInvoiceData()

	_, err := g.GenerateInvoicePDF(context.Background(), profile, customer, invoice, nil)
	require.Error(t, err)
}
