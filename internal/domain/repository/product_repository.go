package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Vishalsnw/Vyap/internal/domain/entity"
)

// ProductRepository is the persistence port for Product.
//
// DecrementStock is a best-effort bookkeeping update issued after an
// invoice commit; it may drive stock below zero and callers treat its
// failure as advisory, never as a reason to roll back the invoice.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	DecrementStock(ctx context.Context, productID string, quantity decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
