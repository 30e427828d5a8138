package dto

import "honeydew-api/modules/meeting/entity"

// ===================== Request DTOs =====================

// MeetingActionRequest advances the slot negotiation. The cursor is held by
// the client and echoed back on each call.
type MeetingActionRequest struct {
	Action string `json:"action" validate:"required"`
	Cursor int    `json:"cursor"`
}

// ===================== Response DTOs =====================

// SlotResponse is one ranked weekly slot with who can and cannot make it.
type SlotResponse struct {
	Day          string   `json:"day"`
	DayOfWeek    int      `json:"day_of_week"`
	TimeSlot     string   `json:"time_slot"`
	Available    []string `json:"available"`
	Unavailable  []string `json:"unavailable"`
	TotalMembers int      `json:"total_members"`
}

// SuggestResponse carries the top suggestion plus alternatives, or a guidance
// message when there is nothing to suggest.
type SuggestResponse struct {
	Suggestion   *SlotResponse  `json:"suggestion"`
	Alternatives []SlotResponse `json:"alternatives"`
	Message      string         `json:"message,omitempty"`
}

// MeetingActionResponse reports where the negotiation landed.
type MeetingActionResponse struct {
	Status    string        `json:"status"`
	Cursor    int           `json:"cursor"`
	Confirmed *SlotResponse `json:"confirmed,omitempty"`
	Next      *SlotResponse `json:"next,omitempty"`
	Message   string        `json:"message,omitempty"`
}

// ===================== Mapper Functions =====================

func ToSlotResponse(c *entity.SlotCandidate) SlotResponse {
	return SlotResponse{
		Day:          c.Day,
		DayOfWeek:    c.DayOfWeek,
		TimeSlot:     c.TimeSlot,
		Available:    c.Available,
		Unavailable:  c.Unavailable,
		TotalMembers: c.TotalMembers,
	}
}
