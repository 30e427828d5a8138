package entity

import (
	"time"

	"github.com/google/uuid"
)

// Availability marks one member free for one weekly slot in a group.
type Availability struct {
	ID        uuid.UUID `db:"id"`
	GroupID   uuid.UUID `db:"group_id"`
	UserID    uuid.UUID `db:"user_id"`
	DayOfWeek int       `db:"day_of_week"`
	TimeSlot  string    `db:"time_slot"`
	CreatedAt time.Time `db:"created_at"`

	// UserName is joined from users for display and ranking.
	UserName string `db:"user_name"`
}
