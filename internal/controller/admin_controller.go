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

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	admins    service.IAdminService
	profiles  service.IProfileService
	jwtSecret string
}

func NewAdminController(admins service.IAdminService, profiles service.IProfileService, jwtSecret string) IAdminController {
	return &adminController{
		admins:    admins,
		profiles:  profiles,
		jwtSecret: jwtSecret,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Use(serverutils.AdminOnly)

	h.Get("/profiles", c.listProfiles)
	h.Get("/profiles/:id", c.getProfile)
	h.Put("/profiles/:id", c.updateProfile)
	h.Patch("/profiles/:id/status", c.updateProfileStatus)
	h.Delete("/profiles/:id", c.purgeProfile)

	h.Get("/interests", c.listInterests)
	h.Delete("/interests/:id", c.deleteInterest)
	h.Get("/profile-interests", c.listProfileInterests)
	h.Delete("/profile-interests/:id", c.deleteProfileInterest)

	h.Get("/bookings", c.listBookings)
	h.Delete("/bookings/:id", c.deleteBooking)
	h.Patch("/bookings/:id/payment", c.processPayment)
	h.Patch("/bookings/:id/plan", c.updatePackagePlan)
	h.Patch("/bookings/:id/expiry", c.updateExpiry)

	h.Get("/dashboard", c.dashboard)
	h.Get("/logs", c.logs)
}

func parseIDParam(ctx *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params("id"))
	return id, err == nil
}

func respondAdminError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, entity.ErrValidation):
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
}

func (c *adminController) listProfiles(ctx *fiber.Ctx) error {
	res, err := c.admins.ListProfiles(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Profiles", res))
}

func (c *adminController) getProfile(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}
	res, err := c.admins.GetProfile(ctx.Context(), id)
	if err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile", res))
}

func (c *adminController) updateProfile(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.profiles.UpdateProfile(ctx.Context(), id, &req); err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Profile updated", nil))
}

func (c *adminController) updateProfileStatus(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}

	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.admins.UpdateProfileStatus(ctx.Context(), id, req.Status); err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Status updated", nil))
}

func (c *adminController) purgeProfile(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}
	if err := c.admins.PurgeProfile(ctx.Context(), id); err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Profile removed", nil))
}

func (c *adminController) listInterests(ctx *fiber.Ctx) error {
	res, err := c.admins.ListInterests(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Interests", res))
}

func (c *adminController) deleteInterest(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}
	if err := c.admins.DeleteInterest(ctx.Context(), id); err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Interest removed", nil))
}

func (c *adminController) listProfileInterests(ctx *fiber.Ctx) error {
	res, err := c.admins.ListProfileInterests(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile interests", res))
}

func (c *adminController) deleteProfileInterest(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}
	if err := c.admins.DeleteProfileInterest(ctx.Context(), id); err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Profile interest removed", nil))
}

func (c *adminController) listBookings(ctx *fiber.Ctx) error {
	res, err := c.admins.ListBookings(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Bookings", res))
}

func (c *adminController) deleteBooking(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}
	if err := c.admins.DeleteBooking(ctx.Context(), id); err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Booking removed", nil))
}

func (c *adminController) processPayment(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}

	var req dto.ProcessPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := c.admins.ProcessPayment(ctx.Context(), id, req.Income); err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Payment processed", nil))
}

func (c *adminController) updatePackagePlan(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}

	var req dto.UpdatePackagePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.admins.UpdatePackagePlan(ctx.Context(), id, req.PackagePlan); err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Plan updated", nil))
}

func (c *adminController) updateExpiry(ctx *fiber.Ctx) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}

	var req dto.UpdateExpiryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.admins.UpdateExpiry(ctx.Context(), id, req.ExpDate); err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Expiry updated", nil))
}

func (c *adminController) dashboard(ctx *fiber.Ctx) error {
	res, err := c.admins.GetDashboardStats(ctx.Context())
	if err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *adminController) logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.admins.GetLogs(level, limit, offset)
	if err != nil {
		return respondAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs", res))
}
