package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

// ─── fakes ──────────────────────────────────────────────────────────

type fakeStatsRepo struct {
	salesTotal   decimal.Decimal
	invoiceCount int
	stockValue   decimal.Decimal
	lowStock     int
	daily        []repository.DailySales

	salesErr error

	recentDaysAsked int
}

func (f *fakeStatsRepo) SalesTotals(ctx context.Context) (decimal.Decimal, int, error) {
	if f.salesErr != nil {
		return decimal.Zero, 0, f.salesErr
	}
	return f.salesTotal, f.invoiceCount, nil
}

func (f *fakeStatsRepo) StockValue(ctx context.Context) (decimal.Decimal, error) {
	return f.stockValue, nil
}

func (f *fakeStatsRepo) LowStockCount(ctx context.Context) (int, error) {
	return f.lowStock, nil
}

func (f *fakeStatsRepo) RecentDailySales(ctx context.Context, days int) ([]repository.DailySales, error) {
	f.recentDaysAsked = days
	return f.daily, nil
}

var _ repository.StatsRepository = (*fakeStatsRepo)(nil)

// ─── tests ──────────────────────────────────────────────────────────

func TestDashboard_Summary(t *testing.T) {
	repo := &fakeStatsRepo{
		salesTotal:   decimal.RequireFromString("12599.50"),
		invoiceCount: 7,
		stockValue:   decimal.RequireFromString("45000"),
		lowStock:     3,
		daily: []repository.DailySales{
			{Day: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Total: decimal.RequireFromString("199.99")},
			{Day: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Total: decimal.RequireFromString("1200")},
		},
	}
	uc := NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.True(t, out.TotalSales.Equal(decimal.RequireFromString("12599.50")))
	require.Equal(t, 7, out.InvoiceCount)
	require.True(t, out.StockValue.Equal(decimal.RequireFromString("45000")))
	require.Equal(t, 3, out.LowStockCount)

	require.Len(t, out.RecentSales, 2)
	require.Equal(t, "27/08", out.RecentSales[0].Date)
	require.True(t, out.RecentSales[0].Total.Equal(decimal.RequireFromString("199.99")))
	require.Equal(t, "28/08", out.RecentSales[1].Date)

	require.Equal(t, recentSalesDays, repo.recentDaysAsked)
}

func TestDashboard_EmptyBusiness(t *testing.T) {
	repo := &fakeStatsRepo{
		salesTotal: decimal.Zero,
		stockValue: decimal.Zero,
	}
	uc := NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.True(t, out.TotalSales.IsZero())
	require.Equal(t, 0, out.InvoiceCount)
	require.True(t, out.StockValue.IsZero())
	require.Equal(t, 0, out.LowStockCount)
	require.Empty(t, out.RecentSales)
}

func TestDashboard_QueryErrorSurfaces(t *testing.T) {
	boom := errors.New("connection reset")
	uc := NewDashboardUseCase(&fakeStatsRepo{salesErr: boom})

	out, err := uc.GetSummary(context.Background())
	require.ErrorIs(t, err, boom)
	require.Nil(t, out)
}
