package repository

import (
	"context"
	"honeydew-api/core/database"
	"honeydew-api/core/logger"
	"honeydew-api/modules/availability/entity"

	"github.com/google/uuid"
)

// AvailabilityRepository handles availability database operations
type AvailabilityRepository struct {
	DB database.Database
}

func NewAvailabilityRepository(db database.Database) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// AvailabilityRepositoryInterface defines the repository contract
type AvailabilityRepositoryInterface interface {
	GetByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Availability, error)
	ReplaceForUser(ctx context.Context, groupID, userID uuid.UUID, slots []entity.Availability) error
}

func (r *AvailabilityRepository) GetByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Availability, error) {
	query := `
		SELECT a.id, a.group_id, a.user_id, a.day_of_week, a.time_slot, a.created_at,
		       u.name AS user_name
		FROM availability a
		JOIN users u ON u.id = a.user_id
		WHERE a.group_id = $1
		ORDER BY a.day_of_week, a.time_slot
	`

	entries := []entity.Availability{}
	if err := r.DB.SelectContext(ctx, &entries, query, groupID); err != nil {
		logger.Error("AvailabilityRepository:GetByGroup", err)
		return nil, err
	}

	return entries, nil
}

// ReplaceForUser swaps out everything the user had in the group for the given
// slots. Delete and insert run in one transaction so readers never see a
// half-replaced week.
func (r *AvailabilityRepository) ReplaceForUser(ctx context.Context, groupID, userID uuid.UUID, slots []entity.Availability) error {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AvailabilityRepository:ReplaceForUser - BeginTx", err)
		return err
	}
	defer tx.Rollback()

	deleteQuery := `
		DELETE FROM availability
		WHERE group_id = $1 AND user_id = $2
	`
	if _, err := tx.ExecContext(ctx, deleteQuery, groupID, userID); err != nil {
		logger.Error("AvailabilityRepository:ReplaceForUser - Delete", err)
		return err
	}

	insertQuery := `
		INSERT INTO availability (group_id, user_id, day_of_week, time_slot)
		VALUES ($1, $2, $3, $4)
	`
	for _, slot := range slots {
		if _, err := tx.ExecContext(ctx, insertQuery, groupID, userID, slot.DayOfWeek, slot.TimeSlot); err != nil {
			logger.Error("AvailabilityRepository:ReplaceForUser - Insert", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("AvailabilityRepository:ReplaceForUser - Commit", err)
		return err
	}

	return nil
}
