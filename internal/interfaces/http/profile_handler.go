package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vishalsnw/Vyap/internal/application/billing"
	"github.com/Vishalsnw/Vyap/internal/application/dto"
	"github.com/Vishalsnw/Vyap/internal/application/usecase"
)

// ProfileHandler handles the business profile and the free-tier usage
// surface (protected).
type ProfileHandler struct {
	uc    *usecase.ProfileUseCase
	usage *billing.FreeTierPolicy
}

// NewProfileHandler builds the handler.
func NewProfileHandler(uc *usecase.ProfileUseCase, usage *billing.FreeTierPolicy) *ProfileHandler {
	return &ProfileHandler{uc: uc, usage: usage}
}

// Get returns the business profile.
// GET /api/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Upsert saves the business profile, creating it on first save.
// PUT /api/profile
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Usage reports the free-tier position.
// GET /api/usage
func (h *ProfileHandler) Usage(c *fiber.Ctx) error {
	out, err := h.usage.Usage(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetPro toggles the pro flag, lifting the free-tier cap.
// POST /api/usage/pro
func (h *ProfileHandler) SetPro(c *fiber.Ctx) error {
	var in struct {
		Pro bool `json:"pro"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.usage.SetPro(c.Context(), in.Pro); err != nil {
		return respondError(c, err)
	}
	out, err := h.usage.Usage(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
