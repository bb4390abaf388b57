package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Vishalsnw/Vyap/internal/application/dto"
	"github.com/Vishalsnw/Vyap/internal/domain"
	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

// ProfileUseCase manages the single business profile row.
type ProfileUseCase struct {
	repo repository.BusinessProfileRepository
}

// NewProfileUseCase builds the use case.
func NewProfileUseCase(repo repository.BusinessProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get returns the profile, or ErrNotFound when none has been saved yet.
func (uc *ProfileUseCase) Get(ctx context.Context) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

// Upsert overwrites the profile row (creating it on first save).
func (uc *ProfileUseCase) Upsert(ctx context.Context, in dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: business name is required", domain.ErrValidation)
	}
	profile := &entity.BusinessProfile{
		Name:          in.Name,
		Address:       in.Address,
		Phone:         in.Phone,
		GSTIN:         in.GSTIN,
		LogoPath:      in.LogoPath,
		SignaturePath: in.SignaturePath,
		UpdatedAt:     time.Now(),
	}
	if err := uc.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *entity.BusinessProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Name:          p.Name,
		Address:       p.Address,
		Phone:         p.Phone,
		GSTIN:         p.GSTIN,
		LogoPath:      p.LogoPath,
		SignaturePath: p.SignaturePath,
	}
}
