package server

import (
	"errors"
	"strconv"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePagination reads limit/offset query params with sane bounds.
func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultPageSize)
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// parseID parses a positive integer route param, writing the 400 response
// itself when the value is malformed. Callers return the error unchanged.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param+" parameter"))
	}
	return uint(id), nil
}

// currentUserID reads the authenticated user ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// respondServiceError maps an AppError's code to an HTTP status and writes
// the error response. Unknown errors become 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := fiber.StatusInternalServerError
		switch appErr.Code {
		case "VALIDATION_ERROR", "CONFLICT":
			status = fiber.StatusBadRequest
		case "FORBIDDEN":
			status = fiber.StatusForbidden
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		}
		return models.RespondWithError(c, status, appErr)
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}
