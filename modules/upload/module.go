package upload

import (
	"context"
	appConfig "honeydew-api/core/config"
	"honeydew-api/core/logger"
	"honeydew-api/core/middleware"
	"honeydew-api/modules/upload/controller"
	"honeydew-api/modules/upload/router"
	"honeydew-api/modules/upload/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the upload module and registers routes. When the S3
// client cannot be built the routes are skipped rather than failing startup.
func Init(e *echo.Echo, cfg appConfig.S3Config, mw *middleware.Middleware) {
	client, err := service.NewS3Client(context.Background(), cfg)
	if err != nil {
		logger.Warn("upload module disabled: S3 client unavailable", "error", err)
		return
	}

	svc := service.NewUploadService(client, cfg)
	ctrl := controller.NewUploadController(svc)
	rtr := router.NewUploadRouter(ctrl)

	rtr.Setup(e, mw)
}
