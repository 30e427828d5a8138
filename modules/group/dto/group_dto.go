package dto

import (
	"honeydew-api/modules/group/entity"
	taskDto "honeydew-api/modules/task/dto"
	"time"
)

// ===================== Request DTOs =====================

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

// JoinGroupRequest joins by invite code, or by the phone number of a group's
// creator when no code is at hand.
type JoinGroupRequest struct {
	InviteCode string `json:"invite_code"`
	Phone      string `json:"phone"`
}

type CreateMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type AddListItemRequest struct {
	TaskID string `json:"task_id" validate:"required"`
}

// ReorderItem pins one shared-list entry to a position.
type ReorderItem struct {
	TaskID   string `json:"task_id" validate:"required"`
	Position int    `json:"position"`
}

type ReorderListRequest struct {
	Items []ReorderItem `json:"items" validate:"required"`
}

// ===================== Response DTOs =====================

type GroupResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	CreatorID        string    `json:"creator_id"`
	InviteCode       string    `json:"invite_code"`
	MeetingDay       string    `json:"meeting_day,omitempty"`
	MeetingTime      string    `json:"meeting_time,omitempty"`
	MeetingConfirmed bool      `json:"meeting_confirmed"`
	StreakCount      int       `json:"streak_count"`
	MemberCount      int       `json:"member_count,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type MemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// GroupDetailResponse is the full group page payload.
type GroupDetailResponse struct {
	Group       GroupResponse                     `json:"group"`
	Members     []MemberResponse                  `json:"members"`
	MemberTasks map[string][]taskDto.TaskResponse `json:"member_tasks"`
	IsCreator   bool                              `json:"is_creator"`
}

type MealLeadResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type PaginatedMessagesResponse struct {
	Items      []MessageResponse `json:"items"`
	TotalItems int               `json:"total_items"`
	PageNumber int               `json:"page_number"`
	PageSize   int               `json:"page_size"`
}

type ListItemResponse struct {
	ID              string    `json:"id"`
	GroupID         string    `json:"group_id"`
	TaskID          string    `json:"task_id"`
	AddedBy         string    `json:"added_by"`
	AddedByName     string    `json:"added_by_name"`
	Position        *int      `json:"position"`
	AddedAt         time.Time `json:"added_at"`
	TaskName        string    `json:"task_name"`
	TaskDescription string    `json:"task_description,omitempty"`
	TaskLocation    string    `json:"task_location,omitempty"`
	TaskCompleted   bool      `json:"task_completed"`
}

// ===================== Mapper Functions =====================

func ToGroupResponse(g *entity.Group) GroupResponse {
	resp := GroupResponse{
		ID:               g.ID.String(),
		Name:             g.Name,
		Slug:             g.Slug,
		CreatorID:        g.CreatorID.String(),
		InviteCode:       g.InviteCode,
		MeetingConfirmed: g.MeetingConfirmed,
		StreakCount:      g.StreakCount,
		CreatedAt:        g.CreatedAt,
	}

	if g.MeetingDay != nil {
		resp.MeetingDay = *g.MeetingDay
	}
	if g.MeetingTime != nil {
		resp.MeetingTime = *g.MeetingTime
	}

	return resp
}

func ToMemberResponse(m *entity.MemberDetail) MemberResponse {
	return MemberResponse{
		ID:    m.ID.String(),
		Name:  m.Name,
		Email: m.Email,
		Phone: m.Phone,
	}
}

func ToMessageResponse(m *entity.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID.String(),
		GroupID:   m.GroupID.String(),
		UserID:    m.UserID.String(),
		UserName:  m.UserName,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ToListItemResponse(item *entity.ListItem) ListItemResponse {
	resp := ListItemResponse{
		ID:            item.ID.String(),
		GroupID:       item.GroupID.String(),
		TaskID:        item.TaskID.String(),
		AddedBy:       item.AddedBy.String(),
		AddedByName:   item.AddedByName,
		Position:      item.Position,
		AddedAt:       item.AddedAt,
		TaskName:      item.TaskName,
		TaskCompleted: item.TaskCompleted,
	}

	if item.TaskDescription != nil {
		resp.TaskDescription = *item.TaskDescription
	}
	if item.TaskLocation != nil {
		resp.TaskLocation = *item.TaskLocation
	}

	return resp
}
