package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vishalsnw/Vyap/internal/application/analytics"
	"github.com/Vishalsnw/Vyap/internal/application/auth"
	"github.com/Vishalsnw/Vyap/internal/application/billing"
	"github.com/Vishalsnw/Vyap/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *billing.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
	ProfileUC     *usecase.ProfileUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
	Usage         *billing.FreeTierPolicy
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public): PIN -> bearer token
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/token", authHandler.Token)

	// Everything else requires a valid token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Invoices (append-only: no update, no delete)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Dashboard summary
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Business profile + free-tier usage
	profileHandler := NewProfileHandler(deps.ProfileUC, deps.Usage)
	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Upsert)
	protected.Get("/usage", profileHandler.Usage)
	protected.Post("/usage/pro", profileHandler.SetPro)
}
