package repository

import (
	"context"
	"database/sql"
	"honeydew-api/core/logger"
	"honeydew-api/modules/group/entity"

	"github.com/google/uuid"
)

const listItemColumns = `
	gl.id, gl.group_id, gl.task_id, gl.added_by, gl.position, gl.added_at,
	t.name AS task_name, t.description AS task_description,
	t.location AS task_location, t.completed AS task_completed,
	u.name AS added_by_name
`

const listItemJoins = `
	FROM group_lists gl
	JOIN tasks t ON t.id = gl.task_id
	JOIN users u ON u.id = gl.added_by
`

func (r *GroupRepository) AddListItem(ctx context.Context, groupID, taskID, addedBy uuid.UUID) error {
	query := `
		INSERT INTO group_lists (group_id, task_id, added_by)
		VALUES ($1, $2, $3)
	`
	if err := r.DB.ExecContext(ctx, query, groupID, taskID, addedBy); err != nil {
		logger.Error("GroupRepository:AddListItem", err)
		return err
	}
	return nil
}

func (r *GroupRepository) GetListItem(ctx context.Context, groupID, taskID uuid.UUID) (*entity.ListItem, error) {
	query := `SELECT ` + listItemColumns + listItemJoins + `
		WHERE gl.group_id = $1 AND gl.task_id = $2`

	var item entity.ListItem
	err := r.DB.GetContext(ctx, &item, query, groupID, taskID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetListItem", err)
		return nil, err
	}

	return &item, nil
}

// GetListItems returns the group's shared list, explicitly positioned items
// first, then the rest in the order they were added.
func (r *GroupRepository) GetListItems(ctx context.Context, groupID uuid.UUID) ([]entity.ListItem, error) {
	query := `SELECT ` + listItemColumns + listItemJoins + `
		WHERE gl.group_id = $1
		ORDER BY gl.position ASC NULLS LAST, gl.added_at ASC`

	items := []entity.ListItem{}
	if err := r.DB.SelectContext(ctx, &items, query, groupID); err != nil {
		logger.Error("GroupRepository:GetListItems", err)
		return nil, err
	}

	return items, nil
}

func (r *GroupRepository) RemoveListItem(ctx context.Context, groupID, taskID uuid.UUID) error {
	query := `
		DELETE FROM group_lists
		WHERE group_id = $1 AND task_id = $2
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query, groupID, taskID)
	if err != nil {
		logger.Error("GroupRepository:RemoveListItem", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("GroupRepository:RemoveListItem - RowsAffected", err)
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ReorderList applies the given task -> position assignments in a single
// transaction so a partially reordered list is never visible.
func (r *GroupRepository) ReorderList(ctx context.Context, groupID uuid.UUID, positions map[uuid.UUID]int) error {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("GroupRepository:ReorderList - BeginTx", err)
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE group_lists
		SET position = $3
		WHERE group_id = $1 AND task_id = $2
	`
	for taskID, position := range positions {
		if _, err := tx.ExecContext(ctx, query, groupID, taskID, position); err != nil {
			logger.Error("GroupRepository:ReorderList - Update", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("GroupRepository:ReorderList - Commit", err)
		return err
	}

	return nil
}
