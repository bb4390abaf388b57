package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Vishalsnw/Vyap/internal/application/dto"
	"github.com/Vishalsnw/Vyap/internal/domain"
	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

// CustomerUseCase covers the customer book: create, list, edit, delete.
// Deleting a customer never touches issued invoices; they keep their own
// snapshot of what was sold and to whom.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create adds a new customer.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		GSTIN:     in.GSTIN,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List returns customers ordered by name.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) ([]*dto.CustomerResponse, error) {
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
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Get returns one customer by ID.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update edits an existing customer.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.GSTIN = in.GSTIN
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes a customer. Invoice history is unaffected.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		GSTIN:   c.GSTIN,
	}
}
