package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo read-only aggregate queries for the dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository builds the adapter.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// SalesTotals returns the lifetime invoiced amount and invoice count.
// COALESCE keeps an empty table at zero instead of NULL.
func (r *StatsRepo) SalesTotals(ctx context.Context) (decimal.Decimal, int, error) {
	const query = `SELECT COALESCE(SUM(grand_total), 0), COUNT(*) FROM invoices`
	var total decimal.Decimal
	var count int
	if err := r.q.QueryRow(ctx, query).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("stats.SalesTotals: %w", err)
	}
	return total, count, nil
}

// StockValue returns Σ selling_price × stock_quantity over the catalogue.
func (r *StatsRepo) StockValue(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(selling_price * stock_quantity), 0) FROM products`
	var value decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("stats.StockValue: %w", err)
	}
	return value, nil
}

// LowStockCount counts products at or below their minimum-stock
// threshold. min_stock = 0 means the threshold is disabled.
func (r *StatsRepo) LowStockCount(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM products WHERE min_stock > 0 AND stock_quantity <= min_stock`
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.LowStockCount: %w", err)
	}
	return n, nil
}

// RecentDailySales groups invoiced totals by calendar day over the last
// `days` days, oldest first. Days without sales produce no row.
func (r *StatsRepo) RecentDailySales(ctx context.Context, days int) ([]repository.DailySales, error) {
	const query = `
	SELECT date_trunc('day', date) AS day, SUM(grand_total) AS total
	FROM invoices
	WHERE date >= date_trunc('day', now()) - make_interval(days => $1)
	GROUP BY day
	ORDER BY day`

	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("stats.RecentDailySales: %w", err)
	}
	defer rows.Close()

	var series []repository.DailySales
	for rows.Next() {
		var d repository.DailySales
		if err := rows.Scan(&d.Day, &d.Total); err != nil {
			return nil, fmt.Errorf("stats.RecentDailySales scan: %w", err)
		}
		series = append(series, d)
	}
	return series, rows.Err()
}
