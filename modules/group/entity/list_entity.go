package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListItem is a task placed on the group's shared list.
type ListItem struct {
	ID       uuid.UUID `db:"id"`
	GroupID  uuid.UUID `db:"group_id"`
	TaskID   uuid.UUID `db:"task_id"`
	AddedBy  uuid.UUID `db:"added_by"`
	Position *int      `db:"position"`
	AddedAt  time.Time `db:"added_at"`

	// Joined display fields
	TaskName        string  `db:"task_name"`
	TaskDescription *string `db:"task_description"`
	TaskLocation    *string `db:"task_location"`
	TaskCompleted   bool    `db:"task_completed"`
	AddedByName     string  `db:"added_by_name"`
}
