package service

import (
	"context"
	"honeydew-api/core/errors"
	"honeydew-api/core/params"
	"honeydew-api/modules/group/dto"
	"strings"

	"github.com/google/uuid"
)

func (s *GroupService) CreateMessage(ctx context.Context, userID, groupID uuid.UUID, req *dto.CreateMessageRequest) (*dto.MessageResponse, *errors.AppError) {
	if _, appErr := s.memberGroup(ctx, userID, groupID); appErr != nil {
		return nil, appErr
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Message content is required", nil)
	}

	message, err := s.repo.CreateMessage(ctx, groupID, userID, content)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to post message", err)
	}

	resp := dto.ToMessageResponse(message)
	return &resp, nil
}

func (s *GroupService) GetMessages(ctx context.Context, userID, groupID uuid.UUID, qp *params.QueryParams) (*dto.PaginatedMessagesResponse, *errors.AppError) {
	if _, appErr := s.memberGroup(ctx, userID, groupID); appErr != nil {
		return nil, appErr
	}

	page, err := s.repo.GetMessages(ctx, groupID, qp.PageNumber, qp.PageSize)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get messages", err)
	}

	items := make([]dto.MessageResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, dto.ToMessageResponse(&page.Items[i]))
	}

	return &dto.PaginatedMessagesResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}
