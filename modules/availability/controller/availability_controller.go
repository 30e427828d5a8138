package controller

import (
	"honeydew-api/core/controller"
	"honeydew-api/core/errors"
	"honeydew-api/modules/availability/dto"
	"honeydew-api/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AvailabilityController handles availability HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

// GetGroupAvailability handles GET /groups/:id/availability
// @Summary Group availability
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {array} dto.AvailabilityResponse
// @Router /private/groups/{id}/availability [get]
func (c *AvailabilityController) GetGroupAvailability(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	result, appErr := c.AvailabilityService.GetGroupAvailability(ctx.Request().Context(), userID, groupID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// SetMyAvailability handles PUT /groups/:id/availability
// @Summary Set my availability
// @Description Replace the caller's weekly availability in the group
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body dto.PutAvailabilityRequest true "Weekly slots"
// @Success 200 {array} dto.AvailabilityResponse
// @Failure 400 {object} errors.AppError
// @Router /private/groups/{id}/availability [put]
func (c *AvailabilityController) SetMyAvailability(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	var req dto.PutAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.SetMyAvailability(ctx.Request().Context(), userID, groupID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Availability saved")
}
