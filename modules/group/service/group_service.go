package service

import (
	"context"
	"database/sql"
	"honeydew-api/core/errors"
	"honeydew-api/core/params"
	"honeydew-api/core/queue"
	"honeydew-api/core/utils"
	authRepo "honeydew-api/modules/auth/repository"
	"honeydew-api/modules/group/dto"
	"honeydew-api/modules/group/entity"
	"honeydew-api/modules/group/repository"
	taskDto "honeydew-api/modules/task/dto"
	taskRepo "honeydew-api/modules/task/repository"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// GroupService handles crew business logic: groups, membership, the meal
// lead, the message board and the shared list.
type GroupService struct {
	repo     repository.GroupRepositoryInterface
	authRepo authRepo.AuthRepositoryInterface
	taskRepo taskRepo.TaskRepositoryInterface
	queue    *queue.Queue
	picker   utils.IntPicker
}

// GroupServiceInterface defines the service contract
type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, userID uuid.UUID, req *dto.CreateGroupRequest) (*dto.GroupResponse, *errors.AppError)
	GetMyGroups(ctx context.Context, userID uuid.UUID) ([]dto.GroupResponse, *errors.AppError)
	GetGroupDetail(ctx context.Context, userID, groupID uuid.UUID) (*dto.GroupDetailResponse, *errors.AppError)
	JoinGroup(ctx context.Context, userID uuid.UUID, req *dto.JoinGroupRequest) (*dto.GroupResponse, *errors.AppError)
	RemoveMember(ctx context.Context, callerID, groupID, memberID uuid.UUID) *errors.AppError
	GetMealLead(ctx context.Context, callerID, groupID uuid.UUID) (*dto.MealLeadResponse, *errors.AppError)
	AssignMealLead(ctx context.Context, callerID, groupID uuid.UUID) (*dto.MealLeadResponse, *errors.AppError)

	CreateMessage(ctx context.Context, userID, groupID uuid.UUID, req *dto.CreateMessageRequest) (*dto.MessageResponse, *errors.AppError)
	GetMessages(ctx context.Context, userID, groupID uuid.UUID, qp *params.QueryParams) (*dto.PaginatedMessagesResponse, *errors.AppError)

	AddListItem(ctx context.Context, userID, groupID uuid.UUID, req *dto.AddListItemRequest) (*dto.ListItemResponse, *errors.AppError)
	GetList(ctx context.Context, userID, groupID uuid.UUID) ([]dto.ListItemResponse, *errors.AppError)
	RemoveListItem(ctx context.Context, userID, groupID, taskID uuid.UUID) *errors.AppError
	ReorderList(ctx context.Context, userID, groupID uuid.UUID, req *dto.ReorderListRequest) ([]dto.ListItemResponse, *errors.AppError)
}

func NewGroupService(
	repo repository.GroupRepositoryInterface,
	aRepo authRepo.AuthRepositoryInterface,
	tRepo taskRepo.TaskRepositoryInterface,
	q *queue.Queue,
	picker utils.IntPicker,
) GroupServiceInterface {
	return &GroupService{
		repo:     repo,
		authRepo: aRepo,
		taskRepo: tRepo,
		queue:    q,
		picker:   picker,
	}
}

func (s *GroupService) CreateGroup(ctx context.Context, userID uuid.UUID, req *dto.CreateGroupRequest) (*dto.GroupResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Group name is required", nil)
	}

	group := &entity.Group{
		Name:       name,
		Slug:       slug.Make(name),
		CreatorID:  userID,
		InviteCode: utils.GenerateInviteCode(),
	}

	created, err := s.repo.CreateGroup(ctx, group)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create group", err)
	}

	if s.queue != nil {
		s.queue.EnqueueBadgeEvaluate(ctx, userID)
	}

	resp := dto.ToGroupResponse(created)
	resp.MemberCount = 1
	return &resp, nil
}

func (s *GroupService) GetMyGroups(ctx context.Context, userID uuid.UUID) ([]dto.GroupResponse, *errors.AppError) {
	groups, err := s.repo.GetGroupsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get groups", err)
	}

	responses := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		resp := dto.ToGroupResponse(&groups[i])
		count, err := s.repo.CountMembers(ctx, groups[i].ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to count members", err)
		}
		resp.MemberCount = count
		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *GroupService) GetGroupDetail(ctx context.Context, userID, groupID uuid.UUID) (*dto.GroupDetailResponse, *errors.AppError) {
	group, appErr := s.memberGroup(ctx, userID, groupID)
	if appErr != nil {
		return nil, appErr
	}

	members, err := s.repo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get members", err)
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	tasks, err := s.taskRepo.GetTasksByUserIDs(ctx, memberIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get member tasks", err)
	}

	memberTasks := make(map[string][]taskDto.TaskResponse, len(members))
	for _, m := range members {
		memberTasks[m.ID.String()] = []taskDto.TaskResponse{}
	}
	for i := range tasks {
		key := tasks[i].UserID.String()
		memberTasks[key] = append(memberTasks[key], *taskDto.ToTaskResponse(&tasks[i]))
	}

	memberResponses := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		memberResponses = append(memberResponses, dto.ToMemberResponse(&members[i]))
	}

	groupResp := dto.ToGroupResponse(group)
	groupResp.MemberCount = len(members)

	return &dto.GroupDetailResponse{
		Group:       groupResp,
		Members:     memberResponses,
		MemberTasks: memberTasks,
		IsCreator:   group.CreatorID == userID,
	}, nil
}

// JoinGroup resolves the target group by invite code when one is supplied,
// otherwise by the phone number of a group creator (their most recent group).
func (s *GroupService) JoinGroup(ctx context.Context, userID uuid.UUID, req *dto.JoinGroupRequest) (*dto.GroupResponse, *errors.AppError) {
	code := strings.ToUpper(strings.TrimSpace(req.InviteCode))
	phone := strings.TrimSpace(req.Phone)
	if code == "" && phone == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Provide an invite code or a phone number", nil)
	}

	var group *entity.Group
	var err error
	if code != "" {
		group, err = s.repo.GetGroupByInviteCode(ctx, code)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up group", err)
		}
	} else {
		creator, err := s.authRepo.GetUserByPhone(ctx, phone)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
		}
		if creator == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "No group found for that phone number", nil)
		}
		group, err = s.repo.GetLatestGroupByCreator(ctx, creator.ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up group", err)
		}
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Group not found", nil)
	}

	isMember, err := s.repo.IsMember(ctx, group.ID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check membership", err)
	}
	if isMember {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Already a member of this group", nil)
	}

	if err := s.repo.AddMember(ctx, group.ID, userID); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to join group", err)
	}

	if s.queue != nil {
		s.queue.EnqueueBadgeEvaluate(ctx, userID)
	}

	count, err := s.repo.CountMembers(ctx, group.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to count members", err)
	}

	resp := dto.ToGroupResponse(group)
	resp.MemberCount = count
	return &resp, nil
}

// RemoveMember is creator-only. Creators cannot remove themselves; that would
// orphan the group.
func (s *GroupService) RemoveMember(ctx context.Context, callerID, groupID, memberID uuid.UUID) *errors.AppError {
	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get group", err)
	}
	if group == nil {
		return errors.NewAppError(errors.ErrNotFound, "Group not found", nil)
	}
	if group.CreatorID != callerID {
		return errors.NewAppError(errors.ErrForbidden, "Only the group creator can remove members", nil)
	}
	if memberID == callerID {
		return errors.NewAppError(errors.ErrInvalidInput, "Creators cannot remove themselves", nil)
	}

	if err := s.repo.RemoveMember(ctx, groupID, memberID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "Member not found in this group", nil)
		}
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove member", err)
	}

	return nil
}

// GetMealLead returns the current meal lead, or nil when none is assigned.
func (s *GroupService) GetMealLead(ctx context.Context, callerID, groupID uuid.UUID) (*dto.MealLeadResponse, *errors.AppError) {
	group, appErr := s.memberGroup(ctx, callerID, groupID)
	if appErr != nil {
		return nil, appErr
	}

	if group.MealLeadID == nil {
		return nil, nil
	}

	lead, err := s.authRepo.GetUserByID(ctx, *group.MealLeadID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meal lead", err)
	}
	if lead == nil {
		return nil, nil
	}

	return &dto.MealLeadResponse{
		ID:   lead.ID.String(),
		Name: lead.Name,
	}, nil
}

// AssignMealLead picks a member uniformly at random and records them as the
// group's meal lead.
func (s *GroupService) AssignMealLead(ctx context.Context, callerID, groupID uuid.UUID) (*dto.MealLeadResponse, *errors.AppError) {
	if _, appErr := s.memberGroup(ctx, callerID, groupID); appErr != nil {
		return nil, appErr
	}

	members, err := s.repo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get members", err)
	}
	if len(members) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidState, "Group has no members", nil)
	}

	chosen := members[s.picker.Intn(len(members))]
	if err := s.repo.SetMealLead(ctx, groupID, chosen.ID); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to assign meal lead", err)
	}

	if s.queue != nil {
		s.queue.EnqueueBadgeEvaluate(ctx, chosen.ID)
	}

	return &dto.MealLeadResponse{
		ID:   chosen.ID.String(),
		Name: chosen.Name,
	}, nil
}

// memberGroup loads a group and enforces that the caller belongs to it.
func (s *GroupService) memberGroup(ctx context.Context, userID, groupID uuid.UUID) (*entity.Group, *errors.AppError) {
	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get group", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Group not found", nil)
	}

	isMember, err := s.repo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check membership", err)
	}
	if !isMember {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not a member of this group", nil)
	}

	return group, nil
}
