package service

import (
	"honeydew-api/core/constants"
	"honeydew-api/core/errors"
	"honeydew-api/modules/meeting/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(n int) []entity.SlotCandidate {
	out := make([]entity.SlotCandidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.SlotCandidate{
			DayOfWeek: i,
			Day:       entity.DayNames[i],
			TimeSlot:  constants.TimeSlotAfternoon,
		})
	}
	return out
}

func TestAdvanceNegotiation_AcceptLocksCandidate(t *testing.T) {
	ranked := candidates(3)

	outcome, appErr := AdvanceNegotiation(ranked, 1, entity.ActionAccept)

	require.Nil(t, appErr)
	assert.Equal(t, entity.StateLocked, outcome.State)
	require.NotNil(t, outcome.Locked)
	assert.Equal(t, ranked[1], *outcome.Locked)
}

func TestAdvanceNegotiation_RejectAdvancesCursor(t *testing.T) {
	ranked := candidates(3)

	outcome, appErr := AdvanceNegotiation(ranked, 0, entity.ActionReject)

	require.Nil(t, appErr)
	assert.Equal(t, entity.StateProposing, outcome.State)
	assert.Equal(t, 1, outcome.Cursor)
	assert.Nil(t, outcome.Locked)
}

func TestAdvanceNegotiation_RejectLastExhausts(t *testing.T) {
	ranked := candidates(2)

	outcome, appErr := AdvanceNegotiation(ranked, 1, entity.ActionReject)

	require.Nil(t, appErr)
	assert.Equal(t, entity.StateExhausted, outcome.State)
}

func TestAdvanceNegotiation_RejectWalkToExhaustion(t *testing.T) {
	ranked := candidates(3)

	cursor := 0
	for i := 0; i < 2; i++ {
		outcome, appErr := AdvanceNegotiation(ranked, cursor, entity.ActionReject)
		require.Nil(t, appErr)
		require.Equal(t, entity.StateProposing, outcome.State)
		cursor = outcome.Cursor
	}

	outcome, appErr := AdvanceNegotiation(ranked, cursor, entity.ActionReject)
	require.Nil(t, appErr)
	assert.Equal(t, entity.StateExhausted, outcome.State)
}

func TestAdvanceNegotiation_ActionPastEndIsInvalidState(t *testing.T) {
	ranked := candidates(2)

	for _, action := range []string{entity.ActionAccept, entity.ActionReject} {
		outcome, appErr := AdvanceNegotiation(ranked, 2, action)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidState, appErr.Code)
		assert.Nil(t, outcome)
	}
}

func TestAdvanceNegotiation_EmptyListIsInvalidState(t *testing.T) {
	_, appErr := AdvanceNegotiation(nil, 0, entity.ActionAccept)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidState, appErr.Code)
}

func TestAdvanceNegotiation_ActionTokensAreCaseSensitive(t *testing.T) {
	ranked := candidates(2)

	for _, action := range []string{"Accept", "REJECT", "maybe", ""} {
		outcome, appErr := AdvanceNegotiation(ranked, 0, action)
		require.NotNil(t, appErr, "action %q should be rejected", action)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		assert.Nil(t, outcome)
	}
}
