package controller

import (
	"errors"

	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/serverutils"
	"viwahaa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBookingController interface {
	RegisterRoutes(r fiber.Router)
	CreateBooking(ctx *fiber.Ctx) error
	GetLatest(ctx *fiber.Ctx) error
}

type bookingController struct {
	service   service.IBookingService
	jwtSecret string
}

func NewBookingController(service service.IBookingService, jwtSecret string) IBookingController {
	return &bookingController{service: service, jwtSecret: jwtSecret}
}

func (c *bookingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bookings")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Post("/", c.CreateBooking)
	h.Get("/latest", c.GetLatest)
}

func (c *bookingController) CreateBooking(ctx *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateBooking(ctx.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		case errors.Is(err, entity.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Package booked", res))
}

// GetLatest returns the signed-in customer's newest booking.
func (c *bookingController) GetLatest(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetLatestForCustomer(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No booking found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Latest booking", res))
}
