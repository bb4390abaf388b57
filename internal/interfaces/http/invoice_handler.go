package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Vishalsnw/Vyap/internal/application/billing"
	"github.com/Vishalsnw/Vyap/internal/application/dto"
)

// InvoiceHandler handles invoice creation, listing and PDF export
// (protected).
type InvoiceHandler struct {
	create *billing.CreateInvoiceUseCase
	pdf    *billing.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(create *billing.CreateInvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{create: create, pdf: pdf}
}

// Create prices the cart, persists the invoice and runs the post-commit
// bookkeeping.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.create.CreateInvoice(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns invoice summaries, newest first.
// GET /api/invoices?limit=&offset=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.create.ListInvoices(c.Context(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID returns one invoice with its items.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.create.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF renders the invoice document and streams it as a file
// attachment.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
