package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Vishalsnw/Vyap/internal/application/dto"
	"github.com/Vishalsnw/Vyap/internal/domain/repository"
)

// recentSalesDays is how far back the recent-sales strip looks.
const recentSalesDays = 5

// DashboardUseCase assembles the home-screen summary from the stats
// repository. The four aggregates are independent queries, so they run
// concurrently and the first failure wins.
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

type salesResult struct {
	total decimal.Decimal
	count int
	err   error
}

type valueResult struct {
	value decimal.Decimal
	err   error
}

type countResult struct {
	n   int
	err error
}

type seriesResult struct {
	series []repository.DailySales
	err    error
}

// GetSummary returns lifetime sales, stock valuation, low-stock count
// and the per-day sales of the last few days.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	salesCh := make(chan salesResult, 1)
	valueCh := make(chan valueResult, 1)
	lowCh := make(chan countResult, 1)
	recentCh := make(chan seriesResult, 1)

	go func() {
		total, count, err := uc.stats.SalesTotals(ctx)
		salesCh <- salesResult{total: total, count: count, err: err}
	}()
	go func() {
		value, err := uc.stats.StockValue(ctx)
		valueCh <- valueResult{value: value, err: err}
	}()
	go func() {
		n, err := uc.stats.LowStockCount(ctx)
		lowCh <- countResult{n: n, err: err}
	}()
	go func() {
		series, err := uc.stats.RecentDailySales(ctx, recentSalesDays)
		recentCh <- seriesResult{series: series, err: err}
	}()

	sales := <-salesCh
	if sales.err != nil {
		return nil, sales.err
	}
	value := <-valueCh
	if value.err != nil {
		return nil, value.err
	}
	low := <-lowCh
	if low.err != nil {
		return nil, low.err
	}
	recent := <-recentCh
	if recent.err != nil {
		return nil, recent.err
	}

	resp := &dto.DashboardResponse{
		TotalSales:    sales.total,
		InvoiceCount:  sales.count,
		StockValue:    value.value,
		LowStockCount: low.n,
		RecentSales:   make([]dto.DailySalesPoint, 0, len(recent.series)),
	}
	for _, day := range recent.series {
		resp.RecentSales = append(resp.RecentSales, dto.DailySalesPoint{
			Date:  day.Day.Format("02/01"),
			Total: day.Total,
		})
	}
	return resp, nil
}
