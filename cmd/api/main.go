package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Vishalsnw/Vyap/internal/application/analytics"
	"github.com/Vishalsnw/Vyap/internal/application/auth"
	"github.com/Vishalsnw/Vyap/internal/application/billing"
	"github.com/Vishalsnw/Vyap/internal/application/usecase"
	"github.com/Vishalsnw/Vyap/internal/domain/gst"
	infrapdf "github.com/Vishalsnw/Vyap/internal/infrastructure/pdf"
	"github.com/Vishalsnw/Vyap/internal/infrastructure/postgres"
	httpRouter "github.com/Vishalsnw/Vyap/internal/interfaces/http"
	"github.com/Vishalsnw/Vyap/pkg/config"
	"github.com/Vishalsnw/Vyap/pkg/logger"
	"github.com/Vishalsnw/Vyap/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	profileRepo := postgres.NewBusinessProfileRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	usagePolicy := billing.NewFreeTierPolicy(settingsRepo, cfg.Billing.FreeTierLimit)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	profileUC := usecase.NewProfileUseCase(profileRepo)
	dashboardUC := analytics.NewDashboardUseCase(statsRepo)

	createInvoiceUC := billing.NewCreateInvoiceUseCase(
		txRunner,
		customerRepo, productRepo, invoiceRepo,
		usagePolicy,
		gst.TimestampNumbering(cfg.Billing.InvoicePrefix),
		log,
	)

	// PDF: the shareable tax invoice document
	pdfRenderer := infrapdf.NewMarotoInvoiceRenderer(money.NewFormatter(cfg.Billing.CurrencySymbol))
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, profileRepo, pdfRenderer)

	authUC := auth.NewAuthUseCase(cfg.Auth.PINHash, auth.JWTConfig{
		Secret:     cfg.Auth.JWTSecret,
		ExpMinutes: cfg.Auth.Expiration,
		Issuer:     cfg.Auth.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF responses can be slow on small instances
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vyap API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		ProductUC:     productUC,
		ProfileUC:     profileUC,
		CreateInvoice: createInvoiceUC,
		InvoicePDF:    invoicePDFUC,
		Usage:         usagePolicy,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.Auth.JWTSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
