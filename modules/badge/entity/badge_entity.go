package entity

import (
	"time"

	"github.com/google/uuid"
)

// BadgeDefinition is a catalog entry for one earnable badge.
type BadgeDefinition struct {
	Type        string
	Name        string
	Description string
	Emoji       string
}

// UserBadge is one badge granted to one user. Grants are permanent.
type UserBadge struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	BadgeType string    `db:"badge_type"`
	EarnedAt  time.Time `db:"earned_at"`
}

// BadgeCounters are the fresh activity counts badge rules are checked
// against.
type BadgeCounters struct {
	TasksCreated   int
	TasksCompleted int
	Memberships    int
	MealLeadGroups int
}
