package billing

import (
	"context"

	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

// BillingTxRunner runs a function inside one transaction covering the
// invoice header and its items. Stock bookkeeping is deliberately NOT
// part of this transaction (see CreateInvoiceUseCase).
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator renders one invoice into a self-contained PDF.
// Implementations must tolerate missing or broken logo/signature images
// and still produce a document; only a failure to build the document
// itself is an error.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		profile *entity.BusinessProfile,
		customer *entity.Customer,
		invoice *entity.Invoice,
		items []*entity.InvoiceItem,
	) ([]byte, error)
}

// UsagePolicy gates invoice creation on the free tier. The caller checks
// CanCreateInvoice before building an invoice and records the creation
// afterwards; recording is best-effort and never fails the save.
type UsagePolicy interface {
	CanCreateInvoice(ctx context.Context) (bool, error)
	RecordInvoiceCreated(ctx context.Context) error
}
