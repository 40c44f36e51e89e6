package controller

import (
	"errors"

	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/serverutils"
	"viwahaa-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	GetMe(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	ListProfiles(ctx *fiber.Ctx) error
	UpdateMe(ctx *fiber.Ctx) error
	UpdateImages(ctx *fiber.Ctx) error
	GetMatches(ctx *fiber.Ctx) error
}

type profileController struct {
	profiles  service.IProfileService
	matcher   service.IMatchService
	jwtSecret string
}

func NewProfileController(profiles service.IProfileService, matcher service.IMatchService, jwtSecret string) IProfileController {
	return &profileController{
		profiles:  profiles,
		matcher:   matcher,
		jwtSecret: jwtSecret,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profiles")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Get("/me", c.GetMe)
	h.Put("/me", c.UpdateMe)
	h.Put("/me/images", c.UpdateImages)
	h.Get("/me/matches", c.GetMatches)
	h.Get("/", c.ListProfiles)
	h.Get("/:id", c.GetProfile)
}

func currentUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return userId, nil
}

func (c *profileController) GetMe(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	return c.respondProfile(ctx, userId)
}

func (c *profileController) GetProfile(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid profile id"))
	}
	return c.respondProfile(ctx, id)
}

func (c *profileController) respondProfile(ctx *fiber.Ctx, id uuid.UUID) error {
	res, err := c.profiles.GetProfile(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Profile not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile", res))
}

func (c *profileController) ListProfiles(ctx *fiber.Ctx) error {
	res, err := c.profiles.ListProfiles(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profiles", res))
}

func (c *profileController) UpdateMe(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.profiles.UpdateProfile(ctx.Context(), userId, &req); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Profile not found"))
		case errors.Is(err, entity.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Profile updated", nil))
}

func (c *profileController) UpdateImages(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateImagesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := c.profiles.UpdateImages(ctx.Context(), userId, &req); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Profile not found"))
		case errors.Is(err, entity.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Images updated", nil))
}

// GetMatches runs the preference matcher for the signed-in profile.
func (c *profileController) GetMatches(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	matches, err := c.matcher.FindMatches(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Profile not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	res := make([]*dto.ProfileResponse, 0, len(matches))
	for _, m := range matches {
		res = append(res, service.ToProfileResponse(m))
	}
	return ctx.JSON(serverutils.SuccessResponse("Matches", res))
}
