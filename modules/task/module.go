package task

import (
	"honeydew-api/core/database"
	"honeydew-api/core/middleware"
	"honeydew-api/core/queue"
	"honeydew-api/modules/task/controller"
	"honeydew-api/modules/task/repository"
	"honeydew-api/modules/task/router"
	"honeydew-api/modules/task/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the task module and registers routes
func Init(e *echo.Echo, db database.Database, q *queue.Queue, mw *middleware.Middleware) {
	repo := repository.NewTaskRepository(db)
	svc := service.NewTaskService(repo, q)
	ctrl := controller.NewTaskController(svc)
	rtr := router.NewTaskRouter(ctrl)

	rtr.Setup(e, mw)
}
