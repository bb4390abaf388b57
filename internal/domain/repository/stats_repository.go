package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySales is one day's invoiced total, used by the dashboard's
// recent-sales strip.
type DailySales struct {
	Day   time.Time
	Total decimal.Decimal
}

// StatsRepository provides the read-only aggregate queries behind the
// dashboard: lifetime sales, current stock valuation, low-stock count
// and the recent per-day sales series.
type StatsRepository interface {
	SalesTotals(ctx context.Context) (total decimal.Decimal, invoiceCount int, err error)
	StockValue(ctx context.Context) (decimal.Decimal, error)
	LowStockCount(ctx context.Context) (int, error)
	RecentDailySales(ctx context.Context, days int) ([]DailySales, error)
}
