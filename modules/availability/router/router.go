package router

import (
	"honeydew-api/core/middleware"
	"honeydew-api/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles availability routes
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

// Setup registers availability routes
func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/groups/:id/availability", mw.AuthMiddleware())

	routes.GET("", r.AvailabilityController.GetGroupAvailability)
	routes.PUT("", r.AvailabilityController.SetMyAvailability)
}
