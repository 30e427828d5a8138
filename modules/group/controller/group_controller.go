package controller

import (
	"honeydew-api/core/controller"
	"honeydew-api/core/errors"
	"honeydew-api/core/params"
	"honeydew-api/modules/group/dto"
	"honeydew-api/modules/group/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GroupController handles group HTTP requests
type GroupController struct {
	controller.BaseController
	GroupService service.GroupServiceInterface
}

func NewGroupController(svc service.GroupServiceInterface) *GroupController {
	return &GroupController{
		BaseController: controller.NewBaseController(),
		GroupService:   svc,
	}
}

// CreateGroup handles POST /groups
// @Summary Create group
// @Tags Group
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupRequest true "Group fields"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} errors.AppError
// @Router /private/groups [post]
func (c *GroupController) CreateGroup(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateGroupRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.GroupService.CreateGroup(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Group created")
}

// GetMyGroups handles GET /groups
// @Summary List my groups
// @Tags Group
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.GroupResponse
// @Router /private/groups [get]
func (c *GroupController) GetMyGroups(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.GroupService.GetMyGroups(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetGroup handles GET /groups/:id
// @Summary Group detail
// @Description Group info plus members and each member's task list
// @Tags Group
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.GroupDetailResponse
// @Failure 404 {object} errors.AppError
// @Router /private/groups/{id} [get]
func (c *GroupController) GetGroup(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	result, appErr := c.GroupService.GetGroupDetail(ctx.Request().Context(), userID, groupID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// JoinGroup handles POST /groups/join
// @Summary Join group
// @Description Join by invite code, or by a group creator's phone number
// @Tags Group
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.JoinGroupRequest true "Invite code or phone"
// @Success 200 {object} dto.GroupResponse
// @Failure 409 {object} errors.AppError
// @Router /private/groups/join [post]
func (c *GroupController) JoinGroup(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.JoinGroupRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.GroupService.JoinGroup(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Joined group")
}

// RemoveMember handles DELETE /groups/:id/members/:memberId
// @Summary Remove member
// @Tags Group
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Param memberId path string true "Member user ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 403 {object} errors.AppError
// @Router /private/groups/{id}/members/{memberId} [delete]
func (c *GroupController) RemoveMember(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	memberID, err := uuid.Parse(ctx.Param("memberId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid member ID")
	}

	if appErr := c.GroupService.RemoveMember(ctx.Request().Context(), userID, groupID, memberID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Member removed")
}

// GetMealLead handles GET /groups/:id/meal-lead
// @Summary Current meal lead
// @Tags Group
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.MealLeadResponse
// @Router /private/groups/{id}/meal-lead [get]
func (c *GroupController) GetMealLead(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	result, appErr := c.GroupService.GetMealLead(ctx.Request().Context(), userID, groupID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// AssignMealLead handles POST /groups/:id/meal-lead
// @Summary Assign meal lead
// @Description Pick a random member to run the next meal
// @Tags Group
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.MealLeadResponse
// @Router /private/groups/{id}/meal-lead [post]
func (c *GroupController) AssignMealLead(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	result, appErr := c.GroupService.AssignMealLead(ctx.Request().Context(), userID, groupID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meal lead assigned")
}

// CreateMessage handles POST /groups/:id/messages
// @Summary Post message
// @Tags Group
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body dto.CreateMessageRequest true "Message body"
// @Success 201 {object} dto.MessageResponse
// @Router /private/groups/{id}/messages [post]
func (c *GroupController) CreateMessage(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	var req dto.CreateMessageRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.GroupService.CreateMessage(ctx.Request().Context(), userID, groupID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Message posted")
}

// GetMessages handles GET /groups/:id/messages
// @Summary List messages
// @Tags Group
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Param page_number query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PaginatedMessagesResponse
// @Router /private/groups/{id}/messages [get]
func (c *GroupController) GetMessages(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	qp := params.FromContext(ctx)

	result, appErr := c.GroupService.GetMessages(ctx.Request().Context(), userID, groupID, &qp)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// AddListItem handles POST /groups/:id/list
// @Summary Add task to shared list
// @Tags Group
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body dto.AddListItemRequest true "Task to add"
// @Success 201 {object} dto.ListItemResponse
// @Failure 409 {object} errors.AppError
// @Router /private/groups/{id}/list [post]
func (c *GroupController) AddListItem(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	var req dto.AddListItemRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.GroupService.AddListItem(ctx.Request().Context(), userID, groupID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Task added to list")
}

// GetList handles GET /groups/:id/list
// @Summary Shared list
// @Tags Group
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {array} dto.ListItemResponse
// @Router /private/groups/{id}/list [get]
func (c *GroupController) GetList(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	result, appErr := c.GroupService.GetList(ctx.Request().Context(), userID, groupID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// RemoveListItem handles DELETE /groups/:id/list
// @Summary Remove task from shared list
// @Tags Group
// @Security BearerAuth
// @Produce json
// @Param id path string true "Group ID"
// @Param taskId query string true "Task ID"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/groups/{id}/list [delete]
func (c *GroupController) RemoveListItem(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	taskID, err := uuid.Parse(ctx.QueryParam("taskId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task ID")
	}

	if appErr := c.GroupService.RemoveListItem(ctx.Request().Context(), userID, groupID, taskID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Task removed from list")
}

// ReorderList handles PUT /groups/:id/list/reorder
// @Summary Reorder shared list
// @Tags Group
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body dto.ReorderListRequest true "Task positions"
// @Success 200 {array} dto.ListItemResponse
// @Router /private/groups/{id}/list/reorder [put]
func (c *GroupController) ReorderList(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	var req dto.ReorderListRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.GroupService.ReorderList(ctx.Request().Context(), userID, groupID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "List reordered")
}
