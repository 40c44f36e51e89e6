package controller

import (
	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/pkg/serverutils"
	"viwahaa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInterestController interface {
	RegisterRoutes(r fiber.Router)
	SubmitInterest(ctx *fiber.Ctx) error
	SubmitProfileInterest(ctx *fiber.Ctx) error
}

type interestController struct {
	service   service.IInterestService
	jwtSecret string
}

func NewInterestController(service service.IInterestService, jwtSecret string) IInterestController {
	return &interestController{service: service, jwtSecret: jwtSecret}
}

func (c *interestController) RegisterRoutes(r fiber.Router) {
	// The enquiry form is public; profile interests require a signed-in member.
	r.Post("/interests", c.SubmitInterest)

	h := r.Group("/profile-interests")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Post("/", c.SubmitProfileInterest)
}

func (c *interestController) SubmitInterest(ctx *fiber.Ctx) error {
	var req dto.CreateInterestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SubmitInterest(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Interest recorded", res))
}

func (c *interestController) SubmitProfileInterest(ctx *fiber.Ctx) error {
	var req dto.CreateProfileInterestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SubmitProfileInterest(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Interest recorded", res))
}
