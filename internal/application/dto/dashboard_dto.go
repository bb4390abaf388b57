package dto

import "github.com/shopspring/decimal"

// DailySalesPoint is one day of the dashboard's recent-sales strip.
type DailySalesPoint struct {
	Date  string          `json:"date"` // dd/MM
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse is the business-at-a-glance summary for the home
// screen: lifetime sales, stock valuation, low-stock alert count and
// the recent per-day sales.
type DashboardResponse struct {
	TotalSales    decimal.Decimal   `json:"total_sales"`
	InvoiceCount  int               `json:"invoice_count"`
	StockValue    decimal.Decimal   `json:"stock_value"`
	LowStockCount int               `json:"low_stock_count"`
	RecentSales   []DailySalesPoint `json:"recent_sales"`
}
