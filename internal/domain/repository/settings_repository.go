package repository

import "context"

// Well-known settings keys.
const (
	SettingInvoiceCount = "invoice_count"
	SettingIsPro        = "is_pro"
)

// SettingsRepository is a small key-value store for app-level state that
// is not part of the business data model: the free-tier invoice counter
// and the pro-version flag.
type SettingsRepository interface {
	GetInt(ctx context.Context, key string) (int, error)
	SetInt(ctx context.Context, key string, value int) error
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}
