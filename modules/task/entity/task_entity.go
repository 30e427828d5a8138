package entity

import (
	coreEntity "honeydew-api/core/entity"

	"github.com/google/uuid"
)

// Task is a household chore owned by a single user.
type Task struct {
	UserID           uuid.UUID `db:"user_id"`
	Name             string    `db:"name"`
	Description      *string   `db:"description"`
	Location         *string   `db:"location"`
	MaterialEstimate *string   `db:"material_estimate"`
	TimeEstimate     *string   `db:"time_estimate"`
	Difficulty       *string   `db:"difficulty"`
	Completed        bool      `db:"completed"`

	coreEntity.BaseEntity
}
