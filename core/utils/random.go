package utils

import "math/rand"

// IntPicker selects an index in [0, n). Injected wherever the service needs
// a random choice so tests can substitute a deterministic source.
type IntPicker interface {
	Intn(n int) int
}

type mathRandPicker struct{}

func (mathRandPicker) Intn(n int) int { return rand.Intn(n) }

// NewRandomPicker returns the default math/rand backed picker.
func NewRandomPicker() IntPicker {
	return mathRandPicker{}
}
