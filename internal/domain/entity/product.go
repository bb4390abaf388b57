package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. GSTPercentage must be one of the fixed
// GST brackets (see the gst package). StockQuantity is decimal because
// goods may be sold by weight or length, not only by piece.
type Product struct {
	ID            string
	Name          string
	SellingPrice  decimal.Decimal
	GSTPercentage int
	StockQuantity decimal.Decimal
	Unit          string // pcs, kg, mtr, ltr...
	MinStock      decimal.Decimal // low-stock alert threshold; zero disables it
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
