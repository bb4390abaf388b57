package repository

import (
	"context"

	"github.com/Vishalsnw/Vyap/internal/domain/entity"
)

// InvoiceRepository is the persistence port for Invoice and its items.
// Invoices are append-only: there is no update operation.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateItem(ctx context.Context, item *entity.InvoiceItem) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
	Count(ctx context.Context) (int, error)
}
