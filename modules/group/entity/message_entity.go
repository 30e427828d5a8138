package entity

import (
	coreEntity "honeydew-api/core/entity"
	"time"

	"github.com/google/uuid"
)

// Message is a group chat-board entry.
type Message struct {
	ID        uuid.UUID `db:"id"`
	GroupID   uuid.UUID `db:"group_id"`
	UserID    uuid.UUID `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`

	// UserName is joined from users for display.
	UserName string `db:"user_name"`
}

type PaginatedMessages = coreEntity.Pagination[Message]
