package user

import (
	"honeydew-api/core/database"
	"honeydew-api/core/middleware"
	authRepo "honeydew-api/modules/auth/repository"
	"honeydew-api/modules/user/controller"
	"honeydew-api/modules/user/repository"
	"honeydew-api/modules/user/router"
	"honeydew-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the user module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo, authRepo.NewAuthRepository(db))
	ctrl := controller.NewUserController(svc)
	rtr := router.NewUserRouter(ctrl)

	rtr.Setup(e, mw)
}
