package service

import (
	"context"
	"database/sql"
	"honeydew-api/core/errors"
	"honeydew-api/modules/group/dto"

	"github.com/google/uuid"
)

// AddListItem puts one of the caller's own tasks on the group's shared list.
func (s *GroupService) AddListItem(ctx context.Context, userID, groupID uuid.UUID, req *dto.AddListItemRequest) (*dto.ListItemResponse, *errors.AppError) {
	if _, appErr := s.memberGroup(ctx, userID, groupID); appErr != nil {
		return nil, appErr
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid task id", err)
	}

	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get task", err)
	}
	if task == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Task not found", nil)
	}
	if task.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "You can only share your own tasks", nil)
	}

	existing, err := s.repo.GetListItem(ctx, groupID, taskID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check list", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Task is already on the list", nil)
	}

	if err := s.repo.AddListItem(ctx, groupID, taskID, userID); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add task to list", err)
	}

	item, err := s.repo.GetListItem(ctx, groupID, taskID)
	if err != nil || item == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load list item", err)
	}

	resp := dto.ToListItemResponse(item)
	return &resp, nil
}

func (s *GroupService) GetList(ctx context.Context, userID, groupID uuid.UUID) ([]dto.ListItemResponse, *errors.AppError) {
	if _, appErr := s.memberGroup(ctx, userID, groupID); appErr != nil {
		return nil, appErr
	}

	items, err := s.repo.GetListItems(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get list", err)
	}

	responses := make([]dto.ListItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, dto.ToListItemResponse(&items[i]))
	}

	return responses, nil
}

// RemoveListItem takes a task off the shared list. Only whoever added it can
// remove it.
func (s *GroupService) RemoveListItem(ctx context.Context, userID, groupID, taskID uuid.UUID) *errors.AppError {
	if _, appErr := s.memberGroup(ctx, userID, groupID); appErr != nil {
		return appErr
	}

	item, err := s.repo.GetListItem(ctx, groupID, taskID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to check list", err)
	}
	if item == nil {
		return errors.NewAppError(errors.ErrNotFound, "Task is not on the list", nil)
	}
	if item.AddedBy != userID {
		return errors.NewAppError(errors.ErrForbidden, "Only the member who added a task can remove it", nil)
	}

	if err := s.repo.RemoveListItem(ctx, groupID, taskID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "Task is not on the list", nil)
		}
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove task from list", err)
	}

	return nil
}

func (s *GroupService) ReorderList(ctx context.Context, userID, groupID uuid.UUID, req *dto.ReorderListRequest) ([]dto.ListItemResponse, *errors.AppError) {
	if _, appErr := s.memberGroup(ctx, userID, groupID); appErr != nil {
		return nil, appErr
	}

	if len(req.Items) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Nothing to reorder", nil)
	}

	positions := make(map[uuid.UUID]int, len(req.Items))
	for _, item := range req.Items {
		taskID, err := uuid.Parse(item.TaskID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid task id", err)
		}
		positions[taskID] = item.Position
	}

	if err := s.repo.ReorderList(ctx, groupID, positions); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to reorder list", err)
	}

	return s.GetList(ctx, userID, groupID)
}
