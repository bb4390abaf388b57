// Package pdf renders the printable GST tax invoice with Maroto v2.
//
// A4 page layout, top to bottom:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Business name / address / phone / GSTIN      [logo, right]  │
//	│  ─────────────────────────────────────────────────────────   │
//	│  TAX INVOICE        Invoice No. + Date (dd/mm/yyyy)          │
//	│  Bill To: customer name / address / phone / GSTIN            │
//	│  TABLE: Item | Qty | Rate | GST% | Total                     │
//	│  GST BREAKUP: per-bracket Taxable / CGST / SGST / Total      │
//	│  TOTALS: Subtotal / CGST / SGST / Grand Total                │
//	│  Terms & conditions (3 lines)                                │
//	│  [signature image]  Authorized Signature                     │
//	└─────────────────────────────────────────────────────────────┘
//
// Missing or unreadable logo/signature files skip their section
// silently; the document is still produced.
package pdf

import (
	"context"
	"fmt"
	"os"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Vishalsnw/Vyap/internal/application/billing"
	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/domain/gst"
	"github.com/Vishalsnw/Vyap/pkg/money"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ billing.InvoicePDFGenerator = (*MarotoInvoiceRenderer)(nil)

// MarotoInvoiceRenderer implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoInvoiceRenderer struct {
	fmt *money.Formatter
}

// NewMarotoInvoiceRenderer builds the renderer with a currency formatter.
func NewMarotoInvoiceRenderer(formatter *money.Formatter) *MarotoInvoiceRenderer {
	return &MarotoInvoiceRenderer{fmt: formatter}
}

// GenerateInvoicePDF renders the invoice and returns its bytes.
func (g *MarotoInvoiceRenderer) GenerateInvoicePDF(
	_ context.Context,
	profile *entity.BusinessProfile,
	customer *entity.Customer,
	invoice *entity.Invoice,
	items []*entity.InvoiceItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+invoice.Number, true).
		WithAuthor(profile.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.businessHeaderRow(profile))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.titleRow(invoice))
	m.AddRows(g.billToRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range g.itemRows(items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	breakupRows, err := g.breakupRows(items)
	if err != nil {
		return nil, err
	}
	for _, r := range breakupRows {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.totalsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(termsRows()...)
	m.AddRows(g.signatureRows(profile)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render invoice document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// businessHeaderRow: business identity on the left, logo on the right.
func (g *MarotoInvoiceRenderer) businessHeaderRow(profile *entity.BusinessProfile) core.Row {
	left := col.New(9).Add(
		text.New(nonEmpty(profile.Name, "My Business"), props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		}),
		text.New(nonEmpty(profile.Address, ""), props.Text{
			Size: 8, Top: 9, Color: colorGray,
		}),
		text.New(contactLine(profile.Phone, profile.GSTIN), props.Text{
			Size: 8, Top: 14, Color: colorGray,
		}),
	)

	r := row.New(22)
	if readableImage(profile.LogoPath) {
		return r.Add(left, image.NewFromFileCol(3, profile.LogoPath, props.Rect{
			Percent: 90, Center: true,
		}))
	}
	return r.Add(left, col.New(3))
}

// titleRow: document title, invoice number and date.
func (g *MarotoInvoiceRenderer) titleRow(invoice *entity.Invoice) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("Invoice No: "+invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Date: "+invoice.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// billToRow: buyer block.
func (g *MarotoInvoiceRenderer) billToRow(customer *entity.Customer) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(nonEmpty(customer.Address, ""), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
			text.New(contactLine(customer.Phone, customer.GSTIN), props.Text{
				Size: 8, Top: 15, Color: colorGray,
			}),
		),
	)
}

// itemsHeaderRow: line-item table header.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 5, align.Left),
		h("Qty", 1, align.Center),
		h("Rate", 2, align.Right),
		h("GST%", 1, align.Center),
		h("Total", 3, align.Right),
	)
}

// itemRows: one row per invoice line. Amount is GST-inclusive.
func (g *MarotoInvoiceRenderer) itemRows(items []*entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				g.fmt.Plain(it.Rate),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d%%", it.GSTPercentage),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				g.fmt.Plain(it.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// breakupRows: per-bracket GST summary table.
func (g *MarotoInvoiceRenderer) breakupRows(items []*entity.InvoiceItem) ([]core.Row, error) {
	flat := make([]entity.InvoiceItem, len(items))
	for i, it := range items {
		flat[i] = *it
	}
	breakup, err := gst.TaxBreakupByBracket(flat)
	if err != nil {
		return nil, fmt.Errorf("compute tax breakup: %w", err)
	}

	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(text.New("GST BREAKUP", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
		row.New(7).Add(
			h("GST%", 2, align.Center),
			h("Taxable", 3, align.Right),
			h("CGST", 2, align.Right),
			h("SGST", 2, align.Right),
			h("Total Tax", 3, align.Right),
		),
	}
	for _, b := range breakup {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d%%", b.GSTPercentage),
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				g.fmt.Plain(b.TaxableAmount),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				g.fmt.Plain(b.CGSTAmount),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				g.fmt.Plain(b.SGSTAmount),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				g.fmt.Plain(b.TotalTax),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return rows, nil
}

// totalsRow: right-aligned totals block with emphasized grand total.
func (g *MarotoInvoiceRenderer) totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(28).Add(
		col.New(5),
		col.New(4).Add(
			label("Subtotal:", 1),
			label("CGST:", 6),
			label("SGST:", 11),
			text.New("GRAND TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 18,
			}),
		),
		col.New(3).Add(
			value(g.fmt.Amount(invoice.Subtotal), 1),
			value(g.fmt.Amount(invoice.CGST), 6),
			value(g.fmt.Amount(invoice.SGST), 11),
			text.New(g.fmt.Amount(invoice.GrandTotal), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 18,
			}),
		),
	)
}

// termsRows: fixed terms block.
func termsRows() []core.Row {
	terms := []string{
		"1. Goods once sold will not be taken back.",
		"2. Interest @18% p.a. will be charged on overdue payments.",
		"3. Subject to local jurisdiction.",
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("TERMS & CONDITIONS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, t := range terms {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(t, props.Text{Size: 7, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

// signatureRows: signature image (when readable) and the caption.
func (g *MarotoInvoiceRenderer) signatureRows(profile *entity.BusinessProfile) []core.Row {
	var rows []core.Row
	if readableImage(profile.SignaturePath) {
		rows = append(rows, row.New(20).Add(
			col.New(8),
			image.NewFromFileCol(4, profile.SignaturePath, props.Rect{
				Percent: 85, Center: true,
			}),
		))
	} else {
		rows = append(rows, row.New(12))
	}
	rows = append(rows, row.New(6).Add(
		col.New(8),
		col.New(4).Add(text.New("Authorized Signature", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
		})),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// contactLine joins phone and GSTIN, skipping empty parts.
func contactLine(phone, gstin string) string {
	switch {
	case phone != "" && gstin != "":
		return "Phone: " + phone + "   |   GSTIN: " + gstin
	case phone != "":
		return "Phone: " + phone
	case gstin != "":
		return "GSTIN: " + gstin
	default:
		return ""
	}
}

// readableImage reports whether path points at a regular readable file.
// Anything else (empty path, missing file, directory) skips the image.
func readableImage(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
