package service

import (
	"honeydew-api/modules/task/dto"
	"strings"
)

// Estimator produces material/time/difficulty estimates for a task from
// keywords in its name and description. Deterministic by construction.
type Estimator struct{}

func NewEstimator() *Estimator {
	return &Estimator{}
}

type keywordRule struct {
	keywords []string
	value    string
}

var materialRules = []keywordRule{
	{[]string{"paint", "wall"}, "$50 - $100"},
	{[]string{"plumb", "pipe", "faucet"}, "$30 - $80"},
	{[]string{"electric", "wire", "light"}, "$20 - $60"},
	{[]string{"roof", "deck", "floor"}, "$100 - $300"},
	{[]string{"clean", "organize"}, "$10 - $25"},
	{[]string{"garden", "lawn", "yard"}, "$20 - $50"},
	{[]string{"fix", "repair"}, "$15 - $40"},
}

var timeRules = []keywordRule{
	{[]string{"paint", "floor", "roof", "deck"}, "4 - 8 hours"},
	{[]string{"clean", "organize"}, "2 - 3 hours"},
	{[]string{"install"}, "2 - 4 hours"},
	{[]string{"fix", "repair"}, "1 - 3 hours"},
	{[]string{"build", "construct"}, "4 - 6 hours"},
}

var difficultyRules = []keywordRule{
	{[]string{"clean", "organize", "tidy"}, "Easy"},
	{[]string{"electric", "plumb", "roof"}, "Hard"},
	{[]string{"paint", "fix", "hang"}, "Medium"},
	{[]string{"build", "install"}, "Medium-Hard"},
}

const (
	defaultMaterialEstimate = "$25 - $50"
	defaultTimeEstimate     = "1 - 2 hours"
	defaultDifficulty       = "Medium"
)

func matchRules(text string, rules []keywordRule, fallback string) string {
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.value
			}
		}
	}
	return fallback
}

// Estimate scans the task text against the keyword tables. First matching
// rule wins, so rule order encodes priority.
func (e *Estimator) Estimate(name, description string) *dto.EstimateResponse {
	text := strings.ToLower(name + " " + description)

	return &dto.EstimateResponse{
		MaterialEstimate: matchRules(text, materialRules, defaultMaterialEstimate),
		TimeEstimate:     matchRules(text, timeRules, defaultTimeEstimate),
		Difficulty:       matchRules(text, difficultyRules, defaultDifficulty),
	}
}
