package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements SettingsRepository over a key-value table.
// Values are stored as text; missing keys read as zero values.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository builds the adapter.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

func (r *SettingsRepo) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.q.QueryRow(ctx, `SELECT value FROM app_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, true, nil
}

func (r *SettingsRepo) set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// GetInt reads an integer setting; a missing key reads as 0.
func (r *SettingsRepo) GetInt(ctx context.Context, key string) (int, error) {
	value, ok, err := r.get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("setting %q is not an integer: %w", key, err)
	}
	return n, nil
}

// SetInt writes an integer setting.
func (r *SettingsRepo) SetInt(ctx context.Context, key string, value int) error {
	return r.set(ctx, key, strconv.Itoa(value))
}

// GetBool reads a boolean setting; a missing key reads as false.
func (r *SettingsRepo) GetBool(ctx context.Context, key string) (bool, error) {
	value, ok, err := r.get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("setting %q is not a boolean: %w", key, err)
	}
	return b, nil
}

// SetBool writes a boolean setting.
func (r *SettingsRepo) SetBool(ctx context.Context, key string, value bool) error {
	return r.set(ctx, key, strconv.FormatBool(value))
}
