package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_KeywordTable(t *testing.T) {
	e := NewEstimator()

	cases := []struct {
		name        string
		description string
		material    string
		duration    string
		difficulty  string
	}{
		{"Paint the bedroom wall", "", "$50 - $100", "4 - 8 hours", "Medium"},
		{"Fix leaky faucet", "the kitchen one", "$30 - $80", "1 - 3 hours", "Medium"},
		{"Replace light switch", "electrical work", "$20 - $60", "1 - 2 hours", "Hard"},
		{"Re-stain the deck", "", "$100 - $300", "4 - 8 hours", "Medium"},
		{"Clean the garage", "", "$10 - $25", "2 - 3 hours", "Easy"},
		{"Mow the lawn", "", "$20 - $50", "1 - 2 hours", "Medium"},
		{"Repair fence gate", "", "$15 - $40", "1 - 3 hours", "Medium"},
		{"Install new shelves", "", "$25 - $50", "2 - 4 hours", "Medium-Hard"},
		{"Build a birdhouse", "", "$25 - $50", "4 - 6 hours", "Medium-Hard"},
		{"Water the plants", "", "$25 - $50", "1 - 2 hours", "Medium"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Estimate(tc.name, tc.description)
			assert.Equal(t, tc.material, got.MaterialEstimate)
			assert.Equal(t, tc.duration, got.TimeEstimate)
			assert.Equal(t, tc.difficulty, got.Difficulty)
		})
	}
}

func TestEstimate_CaseInsensitive(t *testing.T) {
	e := NewEstimator()

	lower := e.Estimate("paint the hallway", "")
	upper := e.Estimate("PAINT THE HALLWAY", "")

	assert.Equal(t, lower, upper)
}

func TestEstimate_DescriptionContributesKeywords(t *testing.T) {
	e := NewEstimator()

	got := e.Estimate("Weekend project", "organize the pantry shelves")

	assert.Equal(t, "$10 - $25", got.MaterialEstimate)
	assert.Equal(t, "2 - 3 hours", got.TimeEstimate)
	assert.Equal(t, "Easy", got.Difficulty)
}

func TestEstimate_Deterministic(t *testing.T) {
	e := NewEstimator()

	first := e.Estimate("fix and paint the deck", "")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Estimate("fix and paint the deck", ""))
	}
}
