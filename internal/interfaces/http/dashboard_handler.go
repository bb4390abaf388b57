package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vishalsnw/Vyap/internal/application/analytics"
)

// DashboardHandler serves the home-screen summary (protected).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary returns total sales, stock value, low-stock count and the
// recent per-day sales.
// GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
