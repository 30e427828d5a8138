package auth

import (
	"honeydew-api/core/cache"
	"honeydew-api/core/database"
	"honeydew-api/core/middleware"
	"honeydew-api/modules/auth/controller"
	"honeydew-api/modules/auth/repository"
	"honeydew-api/modules/auth/router"
	"honeydew-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.Database, c *cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
}
