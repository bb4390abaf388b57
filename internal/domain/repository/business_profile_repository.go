package repository

import (
	"context"

	"github.com/Vishalsnw/Vyap/internal/domain/entity"
)

// BusinessProfileRepository is the persistence port for the single-row
// business profile. Get returns nil (no error) when no profile exists yet.
type BusinessProfileRepository interface {
	Get(ctx context.Context) (*entity.BusinessProfile, error)
	Upsert(ctx context.Context, profile *entity.BusinessProfile) error
}
