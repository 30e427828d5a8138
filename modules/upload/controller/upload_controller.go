package controller

import (
	"honeydew-api/core/constants"
	"honeydew-api/core/controller"
	"honeydew-api/core/errors"
	"honeydew-api/modules/upload/service"

	"github.com/labstack/echo/v4"
)

// UploadController handles file upload HTTP requests
type UploadController struct {
	controller.BaseController
	UploadService service.UploadServiceInterface
}

func NewUploadController(svc service.UploadServiceInterface) *UploadController {
	return &UploadController{
		BaseController: controller.NewBaseController(),
		UploadService:  svc,
	}
}

// Upload handles POST /uploads
// @Summary Upload image
// @Description Store an image (max 5 MB) and return its key and public URL
// @Tags Upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} service.UploadResult
// @Failure 400 {object} errors.AppError
// @Router /private/uploads [post]
func (c *UploadController) Upload(ctx echo.Context) error {
	if _, err := controller.UserIDFromContext(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Missing file field")
	}

	if header.Size > constants.MaxUploadSize {
		return c.BadRequest(errors.ErrInvalidInput, "File exceeds the 5 MB limit")
	}

	result, appErr := c.UploadService.UploadImage(ctx.Request().Context(), header)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Upload stored")
}
