package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Vishalsnw/Vyap/internal/application/dto"
	"github.com/Vishalsnw/Vyap/internal/domain"
)

// respondError maps domain sentinel errors to HTTP responses. Use cases
// wrap sentinels with fmt.Errorf("%w: ..."), so matching is errors.Is.
//
//	ErrValidation   → 400 VALIDATION
//	ErrUnauthorized → 401 UNAUTHORIZED
//	ErrLimitReached → 403 FREE_LIMIT
//	ErrForbidden    → 403 FORBIDDEN
//	ErrNotFound     → 404 NOT_FOUND
//	ErrDuplicate    → 409 DUPLICATE
//	ErrRender       → 500 RENDER
//	anything else   → 500 INTERNAL
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid credentials"})
	case errors.Is(err, domain.ErrLimitReached):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FREE_LIMIT", Message: "free invoice limit reached, upgrade to pro"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "access denied"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "resource already exists"})
	case errors.Is(err, domain.ErrRender):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: "could not render document"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
}
