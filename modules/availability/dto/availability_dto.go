package dto

import (
	"honeydew-api/core/constants"
	"honeydew-api/modules/availability/entity"
)

// SlotInput is one weekly slot a member is free for.
type SlotInput struct {
	DayOfWeek int    `json:"day_of_week"`
	TimeSlot  string `json:"time_slot"`
}

// PutAvailabilityRequest replaces the caller's availability in a group.
type PutAvailabilityRequest struct {
	Slots []SlotInput `json:"slots"`
}

type AvailabilityResponse struct {
	ID        string `json:"id"`
	GroupID   string `json:"group_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	DayOfWeek int    `json:"day_of_week"`
	TimeSlot  string `json:"time_slot"`
}

// Valid reports whether the slot names a real day and time band.
func (s SlotInput) Valid() bool {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return false
	}
	switch s.TimeSlot {
	case constants.TimeSlotMorning, constants.TimeSlotAfternoon, constants.TimeSlotEvening:
		return true
	}
	return false
}

func ToAvailabilityResponse(a *entity.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		ID:        a.ID.String(),
		GroupID:   a.GroupID.String(),
		UserID:    a.UserID.String(),
		UserName:  a.UserName,
		DayOfWeek: a.DayOfWeek,
		TimeSlot:  a.TimeSlot,
	}
}

func ToAvailabilityResponses(entries []entity.Availability) []AvailabilityResponse {
	responses := make([]AvailabilityResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToAvailabilityResponse(&entries[i]))
	}
	return responses
}
