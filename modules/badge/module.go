package badge

import (
	"honeydew-api/core/constants"
	"honeydew-api/core/database"
	"honeydew-api/core/middleware"
	"honeydew-api/modules/badge/controller"
	"honeydew-api/modules/badge/repository"
	"honeydew-api/modules/badge/router"
	"honeydew-api/modules/badge/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the badge module: routes plus the background evaluator.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, mux *asynq.ServeMux) {
	repo := repository.NewBadgeRepository(db)
	svc := service.NewBadgeService(repo)
	ctrl := controller.NewBadgeController(svc)
	rtr := router.NewBadgeRouter(ctrl)

	rtr.Setup(e, mw)

	worker := service.NewBadgeWorker(svc)
	mux.HandleFunc(constants.TaskBadgeEvaluate, worker.HandleBadgeEvaluate)
}
