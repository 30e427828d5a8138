package controller

import (
	"honeydew-api/core/controller"
	"honeydew-api/core/errors"
	"honeydew-api/modules/task/dto"
	"honeydew-api/modules/task/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TaskController handles task HTTP requests
type TaskController struct {
	controller.BaseController
	TaskService service.TaskServiceInterface
}

func NewTaskController(svc service.TaskServiceInterface) *TaskController {
	return &TaskController{
		BaseController: controller.NewBaseController(),
		TaskService:    svc,
	}
}

// CreateTask handles POST /tasks
// @Summary Create task
// @Tags Task
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task fields"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} errors.AppError
// @Router /private/tasks [post]
func (c *TaskController) CreateTask(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TaskService.CreateTask(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Task created")
}

// GetMyTasks handles GET /tasks
// @Summary List my tasks
// @Tags Task
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.TaskResponse
// @Router /private/tasks [get]
func (c *TaskController) GetMyTasks(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.TaskService.GetMyTasks(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetTask handles GET /tasks/:id
// @Summary Get task
// @Tags Task
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} errors.AppError
// @Router /private/tasks/{id} [get]
func (c *TaskController) GetTask(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task ID")
	}

	result, appErr := c.TaskService.GetTaskByID(ctx.Request().Context(), userID, taskID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateTask handles PUT /tasks/:id
// @Summary Update task
// @Tags Task
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Task fields"
// @Success 200 {object} dto.TaskResponse
// @Router /private/tasks/{id} [put]
func (c *TaskController) UpdateTask(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TaskService.UpdateTask(ctx.Request().Context(), userID, taskID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Task updated")
}

// CompleteTask handles POST /tasks/:id/complete
// @Summary Complete task
// @Tags Task
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Router /private/tasks/{id}/complete [post]
func (c *TaskController) CompleteTask(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task ID")
	}

	result, appErr := c.TaskService.CompleteTask(ctx.Request().Context(), userID, taskID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Task completed")
}

// DeleteTask handles DELETE /tasks/:id
// @Summary Delete task
// @Tags Task
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task ID")
	}

	if appErr := c.TaskService.DeleteTask(ctx.Request().Context(), userID, taskID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Task deleted")
}

// Estimate handles POST /tasks/estimate
// @Summary Estimate task
// @Description Produce material/time/difficulty estimates from the task text
// @Tags Task
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.EstimateRequest true "Task text"
// @Success 200 {object} dto.EstimateResponse
// @Router /private/tasks/estimate [post]
func (c *TaskController) Estimate(ctx echo.Context) error {
	if _, err := controller.UserIDFromContext(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.EstimateRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TaskService.Estimate(&req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
