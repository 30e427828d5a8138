package repository

import (
	"context"
	"database/sql"
	"honeydew-api/core/database"
	"honeydew-api/core/logger"
	"honeydew-api/modules/group/entity"

	"github.com/google/uuid"
)

// GroupRepository handles group, membership, message and shared-list
// database operations
type GroupRepository struct {
	DB database.Database
}

func NewGroupRepository(db database.Database) *GroupRepository {
	return &GroupRepository{DB: db}
}

// GroupRepositoryInterface defines the repository contract
type GroupRepositoryInterface interface {
	// Groups
	CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error)
	GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	GetGroupByInviteCode(ctx context.Context, code string) (*entity.Group, error)
	GetLatestGroupByCreator(ctx context.Context, creatorID uuid.UUID) (*entity.Group, error)
	GetGroupsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Group, error)
	SetMealLead(ctx context.Context, groupID, userID uuid.UUID) error

	// Membership
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
	GetMembers(ctx context.Context, groupID uuid.UUID) ([]entity.MemberDetail, error)
	CountMembers(ctx context.Context, groupID uuid.UUID) (int, error)

	// Messages
	CreateMessage(ctx context.Context, groupID, userID uuid.UUID, content string) (*entity.Message, error)
	GetMessages(ctx context.Context, groupID uuid.UUID, pageNumber, pageSize int) (*entity.PaginatedMessages, error)

	// Shared list
	AddListItem(ctx context.Context, groupID, taskID, addedBy uuid.UUID) error
	GetListItem(ctx context.Context, groupID, taskID uuid.UUID) (*entity.ListItem, error)
	GetListItems(ctx context.Context, groupID uuid.UUID) ([]entity.ListItem, error)
	RemoveListItem(ctx context.Context, groupID, taskID uuid.UUID) error
	ReorderList(ctx context.Context, groupID uuid.UUID, positions map[uuid.UUID]int) error
}

const groupColumns = `
	id, name, slug, creator_id, invite_code, meeting_day, meeting_time,
	meeting_confirmed, streak_count, meal_lead_id, created_at, updated_at
`

// CreateGroup inserts the group and the creator's membership in one
// transaction so a group is never observed without its creator as a member.
func (r *GroupRepository) CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("GroupRepository:CreateGroup - BeginTx", err)
		return nil, err
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO groups (name, slug, creator_id, invite_code)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + groupColumns

	var created entity.Group
	if err := tx.GetContext(ctx, &created, insertQuery,
		group.Name, group.Slug, group.CreatorID, group.InviteCode); err != nil {
		logger.Error("GroupRepository:CreateGroup - Insert", err)
		return nil, err
	}

	memberQuery := `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)
	`
	if _, err := tx.ExecContext(ctx, memberQuery, created.ID, group.CreatorID); err != nil {
		logger.Error("GroupRepository:CreateGroup - AddCreator", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("GroupRepository:CreateGroup - Commit", err)
		return nil, err
	}

	return &created, nil
}

func (r *GroupRepository) GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`

	var group entity.Group
	err := r.DB.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetGroupByID", err)
		return nil, err
	}

	return &group, nil
}

func (r *GroupRepository) GetGroupByInviteCode(ctx context.Context, code string) (*entity.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE invite_code = $1`

	var group entity.Group
	err := r.DB.GetContext(ctx, &group, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetGroupByInviteCode", err)
		return nil, err
	}

	return &group, nil
}

func (r *GroupRepository) GetLatestGroupByCreator(ctx context.Context, creatorID uuid.UUID) (*entity.Group, error) {
	query := `
		SELECT ` + groupColumns + `
		FROM groups
		WHERE creator_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var group entity.Group
	err := r.DB.GetContext(ctx, &group, query, creatorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetLatestGroupByCreator", err)
		return nil, err
	}

	return &group, nil
}

func (r *GroupRepository) GetGroupsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Group, error) {
	query := `
		SELECT g.id, g.name, g.slug, g.creator_id, g.invite_code, g.meeting_day,
		       g.meeting_time, g.meeting_confirmed, g.streak_count, g.meal_lead_id,
		       g.created_at, g.updated_at
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		WHERE gm.user_id = $1
		ORDER BY g.created_at DESC
	`

	var groups []entity.Group
	err := r.DB.SelectContext(ctx, &groups, query, userID)
	if err != nil {
		logger.Error("GroupRepository:GetGroupsByUserID", err)
		return nil, err
	}

	return groups, nil
}

func (r *GroupRepository) SetMealLead(ctx context.Context, groupID, userID uuid.UUID) error {
	query := `
		UPDATE groups
		SET meal_lead_id = $2, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, groupID, userID); err != nil {
		logger.Error("GroupRepository:SetMealLead", err)
		return err
	}
	return nil
}

// ===================== Membership =====================

func (r *GroupRepository) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2
		)
	`

	var exists bool
	if err := r.DB.GetContext(ctx, &exists, query, groupID, userID); err != nil {
		logger.Error("GroupRepository:IsMember", err)
		return false, err
	}

	return exists, nil
}

func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	query := `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)
	`
	if err := r.DB.ExecContext(ctx, query, groupID, userID); err != nil {
		logger.Error("GroupRepository:AddMember", err)
		return err
	}
	return nil
}

func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	query := `
		DELETE FROM group_members
		WHERE group_id = $1 AND user_id = $2
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query, groupID, userID)
	if err != nil {
		logger.Error("GroupRepository:RemoveMember", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("GroupRepository:RemoveMember - RowsAffected", err)
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *GroupRepository) GetMembers(ctx context.Context, groupID uuid.UUID) ([]entity.MemberDetail, error) {
	query := `
		SELECT u.id, u.name, u.email, u.phone
		FROM users u
		JOIN group_members gm ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at
	`

	var members []entity.MemberDetail
	err := r.DB.SelectContext(ctx, &members, query, groupID)
	if err != nil {
		logger.Error("GroupRepository:GetMembers", err)
		return nil, err
	}

	return members, nil
}

func (r *GroupRepository) CountMembers(ctx context.Context, groupID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM group_members WHERE group_id = $1
	`

	var count int
	if err := r.DB.GetContext(ctx, &count, query, groupID); err != nil {
		logger.Error("GroupRepository:CountMembers", err)
		return 0, err
	}

	return count, nil
}
