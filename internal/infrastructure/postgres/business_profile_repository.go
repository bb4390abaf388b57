package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

var _ repository.BusinessProfileRepository = (*BusinessProfileRepo)(nil)

// profileRowID pins the business profile to a single row.
const profileRowID = 1

// BusinessProfileRepo implements BusinessProfileRepository. The app is
// single-business, so the table holds at most one row.
type BusinessProfileRepo struct {
	q Querier
}

// NewBusinessProfileRepository builds the adapter.
func NewBusinessProfileRepository(q Querier) *BusinessProfileRepo {
	return &BusinessProfileRepo{q: q}
}

// Get returns the business profile, or nil when none has been saved yet.
func (r *BusinessProfileRepo) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	query := `
		SELECT id, name, address, phone, gstin, logo_path, signature_path, updated_at
		FROM business_profile WHERE id = $1`
	var p entity.BusinessProfile
	var gstin, logo, signature *string
	err := r.q.QueryRow(ctx, query, profileRowID).Scan(
		&p.ID, &p.Name, &p.Address, &p.Phone, &gstin, &logo, &signature, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business profile: %w", err)
	}
	p.GSTIN = derefStr(gstin)
	p.LogoPath = derefStr(logo)
	p.SignaturePath = derefStr(signature)
	return &p, nil
}

// Upsert saves the business profile, replacing any previous one.
func (r *BusinessProfileRepo) Upsert(ctx context.Context, profile *entity.BusinessProfile) error {
	query := `
		INSERT INTO business_profile (id, name, address, phone, gstin, logo_path, signature_path, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			gstin = EXCLUDED.gstin,
			logo_path = EXCLUDED.logo_path,
			signature_path = EXCLUDED.signature_path,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		profileRowID, profile.Name, profile.Address, profile.Phone,
		nullIfEmpty(profile.GSTIN), nullIfEmpty(profile.LogoPath), nullIfEmpty(profile.SignaturePath),
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert business profile: %w", err)
	}
	return nil
}
