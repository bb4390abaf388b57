package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Vishalsnw/Vyap/internal/application/dto"
	"github.com/Vishalsnw/Vyap/internal/domain"
	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/domain/gst"
	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

// ProductUseCase covers the product catalogue: create, list, edit,
// delete, and the low-stock listing used by the dashboard.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func validateProduct(in dto.CreateProductRequest) error {
	if in.Name == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrValidation)
	}
	if in.SellingPrice.IsNegative() {
		return fmt.Errorf("%w: selling price must not be negative", domain.ErrValidation)
	}
	if !gst.ValidBracket(in.GSTPercentage) {
		return fmt.Errorf("%w: %d%% is not a GST bracket (allowed: 0, 5, 12, 18, 28)", domain.ErrValidation, in.GSTPercentage)
	}
	return nil
}

// Create adds a product to the catalogue.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		SellingPrice:  in.SellingPrice,
		GSTPercentage: in.GSTPercentage,
		StockQuantity: in.StockQuantity,
		Unit:          unit,
		MinStock:      in.MinStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List returns products ordered by name.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Get returns one product by ID.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListLowStock returns products at or below their minimum-stock threshold.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update edits an existing product. Issued invoices are unaffected: they
// carry their own name/rate snapshot.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.SellingPrice = in.SellingPrice
	product.GSTPercentage = in.GSTPercentage
	product.StockQuantity = in.StockQuantity
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	product.MinStock = in.MinStock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a product from the catalogue.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SellingPrice:  p.SellingPrice,
		GSTPercentage: p.GSTPercentage,
		StockQuantity: p.StockQuantity,
		Unit:          p.Unit,
		MinStock:      p.MinStock,
		LowStock:      !p.MinStock.IsZero() && p.StockQuantity.LessThanOrEqual(p.MinStock),
	}
}
