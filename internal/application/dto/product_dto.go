package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body for POST /api/products (also used for PUT).
type CreateProductRequest struct {
	Name          string          `json:"name"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	GSTPercentage int             `json:"gst_percentage"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Unit          string          `json:"unit,omitempty"`
	MinStock      decimal.Decimal `json:"min_stock,omitempty"`
}

// ProductResponse product in responses.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	GSTPercentage int             `json:"gst_percentage"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Unit          string          `json:"unit"`
	MinStock      decimal.Decimal `json:"min_stock"`
	LowStock      bool            `json:"low_stock"`
}
