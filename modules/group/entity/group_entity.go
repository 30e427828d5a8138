package entity

import (
	coreEntity "honeydew-api/core/entity"
	"time"

	"github.com/google/uuid"
)

// Group is a household crew with a single negotiated meeting slot.
// Invariant: meeting_confirmed implies meeting_day and meeting_time are set.
type Group struct {
	Name             string     `db:"name"`
	Slug             string     `db:"slug"`
	CreatorID        uuid.UUID  `db:"creator_id"`
	InviteCode       string     `db:"invite_code"`
	MeetingDay       *string    `db:"meeting_day"`
	MeetingTime      *string    `db:"meeting_time"`
	MeetingConfirmed bool       `db:"meeting_confirmed"`
	StreakCount      int        `db:"streak_count"`
	MealLeadID       *uuid.UUID `db:"meal_lead_id"`

	coreEntity.BaseEntity
}

// GroupMember is the membership edge between a user and a group.
type GroupMember struct {
	GroupID  uuid.UUID `db:"group_id"`
	UserID   uuid.UUID `db:"user_id"`
	JoinedAt time.Time `db:"joined_at"`
}

// MemberDetail is a member row joined with user display fields.
type MemberDetail struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Email string    `db:"email"`
	Phone string    `db:"phone"`
}
