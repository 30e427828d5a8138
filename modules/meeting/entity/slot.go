package entity

import "github.com/google/uuid"

// DayNames maps day_of_week values to display names, Sunday first.
var DayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Member is the minimal view of a group member the ranker needs.
type Member struct {
	ID   uuid.UUID
	Name string
}

// AvailabilityEntry is one member's yes for one weekly slot.
type AvailabilityEntry struct {
	UserID    uuid.UUID
	UserName  string
	DayOfWeek int
	TimeSlot  string
}

// SlotCandidate is one weekly slot ranked by how many members can make it.
type SlotCandidate struct {
	DayOfWeek      int
	Day            string
	TimeSlot       string
	Available      []string
	Unavailable    []string
	AvailableCount int
	TotalMembers   int
}
