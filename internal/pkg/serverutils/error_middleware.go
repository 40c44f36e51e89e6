package serverutils

import (
	"errors"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps service errors onto HTTP statuses. Anything outside the
// sentinel taxonomy is logged and reported as a 500 without leaking details.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, entity.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		default:
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
		}
	}
}
