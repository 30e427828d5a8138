package router

import (
	"honeydew-api/core/middleware"
	"honeydew-api/modules/meeting/controller"

	"github.com/labstack/echo/v4"
)

// MeetingRouter handles meeting routes
type MeetingRouter struct {
	MeetingController *controller.MeetingController
}

func NewMeetingRouter(meetingController *controller.MeetingController) *MeetingRouter {
	return &MeetingRouter{
		MeetingController: meetingController,
	}
}

// Setup registers meeting routes
func (r *MeetingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	meetingRoutes := v1.Group("/private/groups/:id", mw.AuthMiddleware())

	meetingRoutes.GET("/suggest", r.MeetingController.Suggest)
	meetingRoutes.PUT("/meeting", r.MeetingController.HandleMeetingAction)
}
