package router

import (
	"honeydew-api/core/middleware"
	"honeydew-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

// UserRouter handles user profile routes
type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{
		UserController: userController,
	}
}

// Setup registers user routes
func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	userRoutes := v1.Group("/private/user", mw.AuthMiddleware())

	userRoutes.GET("/profile", r.UserController.GetProfile)
	userRoutes.PUT("/profile", r.UserController.UpdateProfile)
	userRoutes.POST("/onboard", r.UserController.Onboard)
}
