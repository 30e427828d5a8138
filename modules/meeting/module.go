package meeting

import (
	"honeydew-api/core/database"
	"honeydew-api/core/middleware"
	availRepository "honeydew-api/modules/availability/repository"
	groupRepository "honeydew-api/modules/group/repository"
	"honeydew-api/modules/meeting/controller"
	"honeydew-api/modules/meeting/repository"
	"honeydew-api/modules/meeting/router"
	"honeydew-api/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the meeting module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewMeetingRepository(db)
	gRepo := groupRepository.NewGroupRepository(db)
	aRepo := availRepository.NewAvailabilityRepository(db)
	svc := service.NewMeetingService(repo, gRepo, aRepo)
	ctrl := controller.NewMeetingController(svc)
	rtr := router.NewMeetingRouter(ctrl)

	rtr.Setup(e, mw)
}
