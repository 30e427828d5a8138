package group

import (
	"honeydew-api/core/database"
	"honeydew-api/core/middleware"
	"honeydew-api/core/queue"
	"honeydew-api/core/utils"
	authRepository "honeydew-api/modules/auth/repository"
	"honeydew-api/modules/group/controller"
	"honeydew-api/modules/group/repository"
	"honeydew-api/modules/group/router"
	"honeydew-api/modules/group/service"
	taskRepository "honeydew-api/modules/task/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the group module and registers routes
func Init(e *echo.Echo, db database.Database, q *queue.Queue, mw *middleware.Middleware) {
	repo := repository.NewGroupRepository(db)
	aRepo := authRepository.NewAuthRepository(db)
	tRepo := taskRepository.NewTaskRepository(db)
	svc := service.NewGroupService(repo, aRepo, tRepo, q, utils.NewRandomPicker())
	ctrl := controller.NewGroupController(svc)
	rtr := router.NewGroupRouter(ctrl)

	rtr.Setup(e, mw)
}
