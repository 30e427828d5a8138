package dto

import (
	"honeydew-api/modules/badge/entity"
	"time"
)

// BadgeResponse is a granted badge joined with its catalog entry.
type BadgeResponse struct {
	ID          string    `json:"id"`
	BadgeType   string    `json:"badge_type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	EarnedAt    time.Time `json:"earned_at"`
}

// DefinitionResponse is one catalog entry, earned or not.
type DefinitionResponse struct {
	BadgeType   string `json:"badge_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

// BadgesResponse is the full badge page payload.
type BadgesResponse struct {
	Badges      []BadgeResponse      `json:"badges"`
	Definitions []DefinitionResponse `json:"definitions"`
}

func ToBadgeResponse(badge *entity.UserBadge, def entity.BadgeDefinition) BadgeResponse {
	return BadgeResponse{
		ID:          badge.ID.String(),
		BadgeType:   badge.BadgeType,
		Name:        def.Name,
		Description: def.Description,
		Emoji:       def.Emoji,
		EarnedAt:    badge.EarnedAt,
	}
}

func ToDefinitionResponses(defs []entity.BadgeDefinition) []DefinitionResponse {
	responses := make([]DefinitionResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, DefinitionResponse{
			BadgeType:   def.Type,
			Name:        def.Name,
			Description: def.Description,
			Emoji:       def.Emoji,
		})
	}
	return responses
}
