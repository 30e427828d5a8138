package router

import (
	"honeydew-api/core/middleware"
	"honeydew-api/modules/badge/controller"

	"github.com/labstack/echo/v4"
)

// BadgeRouter handles badge routes
type BadgeRouter struct {
	BadgeController *controller.BadgeController
}

func NewBadgeRouter(badgeController *controller.BadgeController) *BadgeRouter {
	return &BadgeRouter{
		BadgeController: badgeController,
	}
}

// Setup registers badge routes
func (r *BadgeRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	badgeRoutes := v1.Group("/private/user/badges", mw.AuthMiddleware())

	badgeRoutes.GET("", r.BadgeController.GetBadges)
}
