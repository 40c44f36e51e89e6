package controller

import (
	"errors"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/serverutils"
	"viwahaa-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	GetRoomHistory(ctx *fiber.Ctx) error
	GetHistoryWith(ctx *fiber.Ctx) error
	GetPresence(ctx *fiber.Ctx) error
}

type messageController struct {
	service   service.IChatService
	jwtSecret string
}

func NewMessageController(service service.IChatService, jwtSecret string) IMessageController {
	return &messageController{service: service, jwtSecret: jwtSecret}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/messages")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Get("/rooms/:roomId", c.GetRoomHistory)
	h.Get("/with/:peerId", c.GetHistoryWith)
	h.Get("/presence/:userId", c.GetPresence)
}

func (c *messageController) GetRoomHistory(ctx *fiber.Ctx) error {
	res, err := c.service.GetRoomHistory(ctx.Context(), ctx.Params("roomId"))
	if err != nil {
		if errors.Is(err, entity.ErrValidation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Messages", res))
}

// GetHistoryWith resolves the room from the signed-in user and the peer, so
// clients never assemble room ids themselves.
func (c *messageController) GetHistoryWith(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	peerId, err := uuid.Parse(ctx.Params("peerId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid peer id"))
	}

	res, err := c.service.GetHistoryWith(ctx.Context(), userId, peerId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Messages", res))
}

func (c *messageController) GetPresence(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user id"))
	}

	res, err := c.service.GetPresence(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Profile not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Presence", res))
}
