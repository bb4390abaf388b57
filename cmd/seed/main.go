// seed populates a development database with demo data: a business
// profile, a handful of customers, and a small product catalogue with
// GST brackets spread across the allowed rates.
//
// Usage: go run ./cmd/seed
// Reads the same configuration as the API (DATABASE_URL / DB_* vars).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/infrastructure/postgres"
	"github.com/Vishalsnw/Vyap/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()

	profileRepo := postgres.NewBusinessProfileRepository(pool)
	if err := profileRepo.Upsert(ctx, &entity.BusinessProfile{
		Name:      "Sharma Electricals",
		Address:   "12 MG Road, Pune, Maharashtra 411001",
		Phone:     "9876543210",
		GSTIN:     "27AAAPL1234C1ZV",
		UpdatedAt: now,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "seed business profile: %v\n", err)
		os.Exit(1)
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	customers := []*entity.Customer{
		{Name: "Patel Hardware", Phone: "9123456780", Address: "4 Station Road, Pune", GSTIN: "27BBBPL5678D1ZW"},
		{Name: "Verma Traders", Phone: "9988776655", Address: "22 Gandhi Chowk, Nashik"},
		{Name: "Joshi & Sons", Phone: "9001122334", Address: "8 Market Yard, Satara", GSTIN: "27CCCPJ9012E1ZX"},
	}
	for _, c := range customers {
		c.ID = uuid.New().String()
		c.CreatedAt, c.UpdatedAt = now, now
		if err := customerRepo.Create(ctx, c); err != nil {
			fmt.Fprintf(os.Stderr, "seed customer %s: %v\n", c.Name, err)
			os.Exit(1)
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	products := []*entity.Product{
		{Name: "Copper Wire 1.5mm (90m)", SellingPrice: decimal.NewFromInt(1450), GSTPercentage: 18, StockQuantity: decimal.NewFromInt(40), Unit: "roll", MinStock: decimal.NewFromInt(5)},
		{Name: "Switch Board 6-module", SellingPrice: decimal.NewFromInt(220), GSTPercentage: 18, StockQuantity: decimal.NewFromInt(120), Unit: "pcs", MinStock: decimal.NewFromInt(20)},
		{Name: "LED Bulb 9W", SellingPrice: decimal.NewFromInt(85), GSTPercentage: 12, StockQuantity: decimal.NewFromInt(300), Unit: "pcs", MinStock: decimal.NewFromInt(50)},
		{Name: "Ceiling Fan 1200mm", SellingPrice: decimal.NewFromInt(1890), GSTPercentage: 18, StockQuantity: decimal.NewFromInt(15), Unit: "pcs", MinStock: decimal.NewFromInt(3)},
		{Name: "PVC Conduit Pipe 20mm", SellingPrice: decimal.NewFromInt(55), GSTPercentage: 18, StockQuantity: decimal.NewFromInt(200), Unit: "m"},
		{Name: "Agarbatti Pack", SellingPrice: decimal.NewFromInt(30), GSTPercentage: 5, StockQuantity: decimal.NewFromInt(80), Unit: "pack"},
		{Name: "Fresh Flowers Garland", SellingPrice: decimal.NewFromInt(50), GSTPercentage: 0, StockQuantity: decimal.NewFromInt(25), Unit: "pcs"},
	}
	for _, p := range products {
		p.ID = uuid.New().String()
		p.CreatedAt, p.UpdatedAt = now, now
		if err := productRepo.Create(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "seed product %s: %v\n", p.Name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("seeded 1 profile, %d customers, %d products\n", len(customers), len(products))
}
