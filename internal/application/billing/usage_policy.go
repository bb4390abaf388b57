package billing

import (
	"context"
	"fmt"

	"github.com/Vishalsnw/Vyap/internal/application/dto"
	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

// FreeTierPolicy implements UsagePolicy over the settings store: the free
// tier allows Limit invoices in total, the pro flag lifts the cap. Both
// the limit and the flag are data, not code, so the product constraint
// stays adjustable without a rebuild.
type FreeTierPolicy struct {
	settings repository.SettingsRepository
	limit    int
}

var _ UsagePolicy = (*FreeTierPolicy)(nil)

// NewFreeTierPolicy builds the policy. limit <= 0 disables gating entirely.
func NewFreeTierPolicy(settings repository.SettingsRepository, limit int) *FreeTierPolicy {
	return &FreeTierPolicy{settings: settings, limit: limit}
}

// CanCreateInvoice reports whether another invoice may be created.
func (p *FreeTierPolicy) CanCreateInvoice(ctx context.Context) (bool, error) {
	if p.limit <= 0 {
		return true, nil
	}
	pro, err := p.settings.GetBool(ctx, repository.SettingIsPro)
	if err != nil {
		return false, fmt.Errorf("usage: read pro flag: %w", err)
	}
	if pro {
		return true, nil
	}
	count, err := p.settings.GetInt(ctx, repository.SettingInvoiceCount)
	if err != nil {
		return false, fmt.Errorf("usage: read invoice count: %w", err)
	}
	return count < p.limit, nil
}

// RecordInvoiceCreated bumps the lifetime invoice counter.
func (p *FreeTierPolicy) RecordInvoiceCreated(ctx context.Context) error {
	count, err := p.settings.GetInt(ctx, repository.SettingInvoiceCount)
	if err != nil {
		return fmt.Errorf("usage: read invoice count: %w", err)
	}
	if err := p.settings.SetInt(ctx, repository.SettingInvoiceCount, count+1); err != nil {
		return fmt.Errorf("usage: increment invoice count: %w", err)
	}
	return nil
}

// Usage returns the current free-tier position for the settings screen.
func (p *FreeTierPolicy) Usage(ctx context.Context) (*dto.UsageResponse, error) {
	count, err := p.settings.GetInt(ctx, repository.SettingInvoiceCount)
	if err != nil {
		return nil, fmt.Errorf("usage: read invoice count: %w", err)
	}
	pro, err := p.settings.GetBool(ctx, repository.SettingIsPro)
	if err != nil {
		return nil, fmt.Errorf("usage: read pro flag: %w", err)
	}
	can, err := p.CanCreateInvoice(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.UsageResponse{
		InvoiceCount:  count,
		FreeTierLimit: p.limit,
		IsPro:         pro,
		CanCreate:     can,
	}, nil
}

// SetPro toggles the pro-version flag (e.g. after an upgrade purchase).
func (p *FreeTierPolicy) SetPro(ctx context.Context, pro bool) error {
	if err := p.settings.SetBool(ctx, repository.SettingIsPro, pro); err != nil {
		return fmt.Errorf("usage: set pro flag: %w", err)
	}
	return nil
}
