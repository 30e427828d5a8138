package availability

import (
	"honeydew-api/core/database"
	"honeydew-api/core/middleware"
	"honeydew-api/modules/availability/controller"
	"honeydew-api/modules/availability/repository"
	"honeydew-api/modules/availability/router"
	"honeydew-api/modules/availability/service"
	groupRepository "honeydew-api/modules/group/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewAvailabilityRepository(db)
	gRepo := groupRepository.NewGroupRepository(db)
	svc := service.NewAvailabilityService(repo, gRepo)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
}
