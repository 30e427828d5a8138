package controller

import (
	"honeydew-api/core/controller"
	"honeydew-api/core/errors"
	"honeydew-api/modules/badge/service"

	"github.com/labstack/echo/v4"
)

// BadgeController handles badge HTTP requests
type BadgeController struct {
	controller.BaseController
	BadgeService service.BadgeServiceInterface
}

func NewBadgeController(svc service.BadgeServiceInterface) *BadgeController {
	return &BadgeController{
		BaseController: controller.NewBaseController(),
		BadgeService:   svc,
	}
}

// GetBadges handles GET /user/badges
// @Summary My badges
// @Description Evaluate badge rules, grant anything newly earned and return all grants plus the catalog
// @Tags Badge
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BadgesResponse
// @Router /private/user/badges [get]
func (c *BadgeController) GetBadges(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.BadgeService.GetBadges(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
