package repository

import (
	"context"
	"honeydew-api/core/database"
	"honeydew-api/core/logger"
	"honeydew-api/modules/badge/entity"

	"github.com/google/uuid"
)

// BadgeRepository handles badge database operations
type BadgeRepository struct {
	DB database.Database
}

func NewBadgeRepository(db database.Database) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

// BadgeRepositoryInterface defines the repository contract
type BadgeRepositoryInterface interface {
	GetCounters(ctx context.Context, userID uuid.UUID) (*entity.BadgeCounters, error)
	InsertIfAbsent(ctx context.Context, userID uuid.UUID, badgeType string) error
	GetUserBadges(ctx context.Context, userID uuid.UUID) ([]entity.UserBadge, error)
}

// GetCounters computes the user's activity counts fresh on every call.
func (r *BadgeRepository) GetCounters(ctx context.Context, userID uuid.UUID) (*entity.BadgeCounters, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM tasks WHERE user_id = $1)                       AS tasks_created,
			(SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND completed = TRUE)  AS tasks_completed,
			(SELECT COUNT(*) FROM group_members WHERE user_id = $1)               AS memberships,
			(SELECT COUNT(*) FROM groups WHERE meal_lead_id = $1)                 AS meal_lead_groups
	`

	var row struct {
		TasksCreated   int `db:"tasks_created"`
		TasksCompleted int `db:"tasks_completed"`
		Memberships    int `db:"memberships"`
		MealLeadGroups int `db:"meal_lead_groups"`
	}
	if err := r.DB.GetContext(ctx, &row, query, userID); err != nil {
		logger.Error("BadgeRepository:GetCounters", err)
		return nil, err
	}

	return &entity.BadgeCounters{
		TasksCreated:   row.TasksCreated,
		TasksCompleted: row.TasksCompleted,
		Memberships:    row.Memberships,
		MealLeadGroups: row.MealLeadGroups,
	}, nil
}

// InsertIfAbsent grants a badge once. The unique constraint on
// (user_id, badge_type) makes concurrent evaluations safe.
func (r *BadgeRepository) InsertIfAbsent(ctx context.Context, userID uuid.UUID, badgeType string) error {
	query := `
		INSERT INTO user_badges (user_id, badge_type)
		VALUES ($1, $2)
		ON CONFLICT (user_id, badge_type) DO NOTHING
	`
	if err := r.DB.ExecContext(ctx, query, userID, badgeType); err != nil {
		logger.Error("BadgeRepository:InsertIfAbsent", err)
		return err
	}
	return nil
}

func (r *BadgeRepository) GetUserBadges(ctx context.Context, userID uuid.UUID) ([]entity.UserBadge, error) {
	query := `
		SELECT id, user_id, badge_type, earned_at
		FROM user_badges
		WHERE user_id = $1
		ORDER BY earned_at ASC
	`

	badges := []entity.UserBadge{}
	if err := r.DB.SelectContext(ctx, &badges, query, userID); err != nil {
		logger.Error("BadgeRepository:GetUserBadges", err)
		return nil, err
	}

	return badges, nil
}
