package repository

import (
	"context"
	"database/sql"
	"honeydew-api/core/database"
	"honeydew-api/core/logger"

	"github.com/google/uuid"
)

// MeetingRepository persists the outcome of a slot negotiation
type MeetingRepository struct {
	DB database.Database
}

func NewMeetingRepository(db database.Database) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

// MeetingRepositoryInterface defines the repository contract
type MeetingRepositoryInterface interface {
	ConfirmMeeting(ctx context.Context, groupID uuid.UUID, day, timeSlot string) error
}

// ConfirmMeeting writes the accepted slot onto the group and marks it
// confirmed.
func (r *MeetingRepository) ConfirmMeeting(ctx context.Context, groupID uuid.UUID, day, timeSlot string) error {
	query := `
		UPDATE groups
		SET meeting_day = $2, meeting_time = $3, meeting_confirmed = TRUE, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query, groupID, day, timeSlot)
	if err != nil {
		logger.Error("MeetingRepository:ConfirmMeeting", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("MeetingRepository:ConfirmMeeting - RowsAffected", err)
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
