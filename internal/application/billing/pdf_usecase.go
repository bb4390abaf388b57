package billing

import (
	"context"
	"fmt"

	"github.com/Vishalsnw/Vyap/internal/domain"
	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

// PDFUseCase produces the shareable PDF document of an issued invoice.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	profileRepo  repository.BusinessProfileRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	profileRepo repository.BusinessProfileRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		profileRepo:  profileRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF loads everything the document needs and renders it.
//
// Returns:
//   - (pdfBytes, "<number>.pdf", nil) on success
//   - domain.ErrNotFound if the invoice or its customer no longer exists
//   - a domain.ErrRender-wrapped error if document construction fails
//
// A missing business profile is not an error: the document renders with
// blank header fields, because an invoice must always be exportable from
// valid invoice data alone.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load customer: %w", err)
	}
	if customer == nil {
		return nil, "", fmt.Errorf("%w: customer of invoice %s", domain.ErrNotFound, inv.Number)
	}

	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load business profile: %w", err)
	}
	if profile == nil {
		profile = &entity.BusinessProfile{}
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load items: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, profile, customer, inv, items)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	return pdfBytes, fmt.Sprintf("%s.pdf", inv.Number), nil
}
