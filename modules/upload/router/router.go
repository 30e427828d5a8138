package router

import (
	"honeydew-api/core/middleware"
	"honeydew-api/modules/upload/controller"

	"github.com/labstack/echo/v4"
)

// UploadRouter handles upload routes
type UploadRouter struct {
	UploadController *controller.UploadController
}

func NewUploadRouter(uploadController *controller.UploadController) *UploadRouter {
	return &UploadRouter{
		UploadController: uploadController,
	}
}

// Setup registers upload routes
func (r *UploadRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	uploadRoutes := v1.Group("/private/uploads", mw.AuthMiddleware())

	uploadRoutes.POST("", r.UploadController.Upload)
}
