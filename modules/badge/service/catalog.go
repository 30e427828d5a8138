package service

import "honeydew-api/modules/badge/entity"

// badgeRule pairs a catalog entry with the counter threshold that earns it.
type badgeRule struct {
	def       entity.BadgeDefinition
	counter   func(c entity.BadgeCounters) int
	threshold int
}

// Catalog order is the order badges are evaluated and listed in.
var badgeRules = []badgeRule{
	{
		def:       entity.BadgeDefinition{Type: "first_task", Name: "First Steps", Description: "Created your first task", Emoji: "🔨"},
		counter:   func(c entity.BadgeCounters) int { return c.TasksCreated },
		threshold: 1,
	},
	{
		def:       entity.BadgeDefinition{Type: "five_tasks", Name: "Busy Bee", Description: "Created 5 tasks", Emoji: "🐝"},
		counter:   func(c entity.BadgeCounters) int { return c.TasksCreated },
		threshold: 5,
	},
	{
		def:       entity.BadgeDefinition{Type: "ten_tasks", Name: "Task Master", Description: "Created 10 tasks", Emoji: "👑"},
		counter:   func(c entity.BadgeCounters) int { return c.TasksCreated },
		threshold: 10,
	},
	{
		def:       entity.BadgeDefinition{Type: "first_complete", Name: "Getting It Done", Description: "Completed your first task", Emoji: "✅"},
		counter:   func(c entity.BadgeCounters) int { return c.TasksCompleted },
		threshold: 1,
	},
	{
		def:       entity.BadgeDefinition{Type: "five_complete", Name: "On a Roll", Description: "Completed 5 tasks", Emoji: "🔥"},
		counter:   func(c entity.BadgeCounters) int { return c.TasksCompleted },
		threshold: 5,
	},
	{
		def:       entity.BadgeDefinition{Type: "ten_complete", Name: "Unstoppable", Description: "Completed 10 tasks", Emoji: "💪"},
		counter:   func(c entity.BadgeCounters) int { return c.TasksCompleted },
		threshold: 10,
	},
	{
		def:       entity.BadgeDefinition{Type: "first_group", Name: "Team Player", Description: "Joined your first group", Emoji: "👥"},
		counter:   func(c entity.BadgeCounters) int { return c.Memberships },
		threshold: 1,
	},
	{
		def:       entity.BadgeDefinition{Type: "meal_lead", Name: "Chef's Kiss", Description: "Assigned as Meal Lead", Emoji: "🍕"},
		counter:   func(c entity.BadgeCounters) int { return c.MealLeadGroups },
		threshold: 1,
	},
}

// Definitions returns the full badge catalog in evaluation order.
func Definitions() []entity.BadgeDefinition {
	defs := make([]entity.BadgeDefinition, 0, len(badgeRules))
	for _, rule := range badgeRules {
		defs = append(defs, rule.def)
	}
	return defs
}

// definitionByType looks up a catalog entry. Unknown types return a zero
// definition with only the type set.
func definitionByType(badgeType string) entity.BadgeDefinition {
	for _, rule := range badgeRules {
		if rule.def.Type == badgeType {
			return rule.def
		}
	}
	return entity.BadgeDefinition{Type: badgeType}
}
