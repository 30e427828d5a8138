package router

import (
	"honeydew-api/core/middleware"
	"honeydew-api/modules/group/controller"

	"github.com/labstack/echo/v4"
)

// GroupRouter handles group routes
type GroupRouter struct {
	GroupController *controller.GroupController
}

func NewGroupRouter(groupController *controller.GroupController) *GroupRouter {
	return &GroupRouter{
		GroupController: groupController,
	}
}

// Setup registers group routes
func (r *GroupRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	groupRoutes := v1.Group("/private/groups", mw.AuthMiddleware())

	groupRoutes.POST("", r.GroupController.CreateGroup)
	groupRoutes.GET("", r.GroupController.GetMyGroups)
	groupRoutes.POST("/join", r.GroupController.JoinGroup)
	groupRoutes.GET("/:id", r.GroupController.GetGroup)
	groupRoutes.DELETE("/:id/members/:memberId", r.GroupController.RemoveMember)
	groupRoutes.GET("/:id/meal-lead", r.GroupController.GetMealLead)
	groupRoutes.POST("/:id/meal-lead", r.GroupController.AssignMealLead)

	groupRoutes.POST("/:id/messages", r.GroupController.CreateMessage)
	groupRoutes.GET("/:id/messages", r.GroupController.GetMessages)

	groupRoutes.POST("/:id/list", r.GroupController.AddListItem)
	groupRoutes.GET("/:id/list", r.GroupController.GetList)
	groupRoutes.DELETE("/:id/list", r.GroupController.RemoveListItem)
	groupRoutes.PUT("/:id/list/reorder", r.GroupController.ReorderList)
}
