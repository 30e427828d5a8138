package controller

import (
	"honeydew-api/core/controller"
	"honeydew-api/core/errors"
	"honeydew-api/modules/meeting/dto"
	"honeydew-api/modules/meeting/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MeetingController handles meeting suggestion HTTP requests
type MeetingController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

func NewMeetingController(svc service.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

// Suggest handles GET /groups/:id/suggest
// @Summary Suggest meeting slot
// @Description Best weekly slot for the group plus up to three alternatives
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.SuggestResponse
// @Failure 403 {object} errors.AppError
// @Router /private/groups/{id}/suggest [get]
func (c *MeetingController) Suggest(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	result, appErr := c.MeetingService.Suggest(ctx.Request().Context(), userID, groupID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// HandleMeetingAction handles PUT /groups/:id/meeting
// @Summary Accept or reject a suggested slot
// @Description Accept locks the slot onto the group; reject moves to the next candidate
// @Tags Meeting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body dto.MeetingActionRequest true "Action and cursor"
// @Success 200 {object} dto.MeetingActionResponse
// @Failure 400 {object} errors.AppError
// @Router /private/groups/{id}/meeting [put]
func (c *MeetingController) HandleMeetingAction(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	var req dto.MeetingActionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.HandleMeetingAction(ctx.Request().Context(), userID, groupID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
