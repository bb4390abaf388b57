package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vishalsnw/Vyap/internal/application/auth"
	"github.com/Vishalsnw/Vyap/internal/application/dto"
)

// AuthHandler exchanges the access PIN for a bearer token.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token issues a bearer token for a valid PIN.
// POST /api/auth/token
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.PIN == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pin is required"})
	}
	out, err := h.uc.Token(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
