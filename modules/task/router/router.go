package router

import (
	"honeydew-api/core/middleware"
	"honeydew-api/modules/task/controller"

	"github.com/labstack/echo/v4"
)

// TaskRouter handles task routes
type TaskRouter struct {
	TaskController *controller.TaskController
}

func NewTaskRouter(taskController *controller.TaskController) *TaskRouter {
	return &TaskRouter{
		TaskController: taskController,
	}
}

// Setup registers task routes
func (r *TaskRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	taskRoutes := v1.Group("/private/tasks", mw.AuthMiddleware())

	taskRoutes.POST("", r.TaskController.CreateTask)
	taskRoutes.GET("", r.TaskController.GetMyTasks)
	taskRoutes.POST("/estimate", r.TaskController.Estimate)
	taskRoutes.GET("/:id", r.TaskController.GetTask)
	taskRoutes.PUT("/:id", r.TaskController.UpdateTask)
	taskRoutes.DELETE("/:id", r.TaskController.DeleteTask)
	taskRoutes.POST("/:id/complete", r.TaskController.CompleteTask)
}
