package repository

import (
	"context"
	"honeydew-api/core/logger"
	"honeydew-api/modules/group/entity"

	"github.com/google/uuid"
)

func (r *GroupRepository) CreateMessage(ctx context.Context, groupID, userID uuid.UUID, content string) (*entity.Message, error) {
	query := `
		WITH inserted AS (
			INSERT INTO messages (group_id, user_id, content)
			VALUES ($1, $2, $3)
			RETURNING id, group_id, user_id, content, created_at
		)
		SELECT i.id, i.group_id, i.user_id, i.content, i.created_at, u.name AS user_name
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`

	var message entity.Message
	if err := r.DB.GetContext(ctx, &message, query, groupID, userID, content); err != nil {
		logger.Error("GroupRepository:CreateMessage", err)
		return nil, err
	}

	return &message, nil
}

// GetMessages returns one page of a group's messages, oldest first, with the
// author's name joined in.
func (r *GroupRepository) GetMessages(ctx context.Context, groupID uuid.UUID, pageNumber, pageSize int) (*entity.PaginatedMessages, error) {
	countQuery := `SELECT COUNT(*) FROM messages WHERE group_id = $1`

	var total int
	if err := r.DB.GetContext(ctx, &total, countQuery, groupID); err != nil {
		logger.Error("GroupRepository:GetMessages - Count", err)
		return nil, err
	}

	query := `
		SELECT m.id, m.group_id, m.user_id, m.content, m.created_at, u.name AS user_name
		FROM messages m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1
		ORDER BY m.created_at ASC
		LIMIT $2 OFFSET $3
	`

	offset := (pageNumber - 1) * pageSize
	messages := []entity.Message{}
	if err := r.DB.SelectContext(ctx, &messages, query, groupID, pageSize, offset); err != nil {
		logger.Error("GroupRepository:GetMessages", err)
		return nil, err
	}

	return &entity.PaginatedMessages{
		Items:      messages,
		TotalItems: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}, nil
}
