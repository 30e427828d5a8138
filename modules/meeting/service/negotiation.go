package service

import (
	"honeydew-api/core/errors"
	"honeydew-api/modules/meeting/entity"
)

// AdvanceNegotiation moves the slot negotiation one step. It is pure: the
// caller persists the locked candidate and carries the cursor between calls.
//
// Accepting the candidate at the cursor locks it. Rejecting moves the cursor
// to the next candidate, or exhausts the list when none remain. Acting on a
// cursor with no candidate under it is a contract violation, not a state.
func AdvanceNegotiation(
	ranked []entity.SlotCandidate,
	cursor int,
	action string,
) (*entity.NegotiationOutcome, *errors.AppError) {

	if cursor < 0 || cursor >= len(ranked) {
		return nil, errors.NewAppError(errors.ErrInvalidState, "No candidate at this position", nil)
	}

	switch action {
	case entity.ActionAccept:
		candidate := ranked[cursor]
		return &entity.NegotiationOutcome{
			State:  entity.StateLocked,
			Cursor: cursor,
			Locked: &candidate,
		}, nil

	case entity.ActionReject:
		next := cursor + 1
		if next < len(ranked) {
			return &entity.NegotiationOutcome{
				State:  entity.StateProposing,
				Cursor: next,
			}, nil
		}
		return &entity.NegotiationOutcome{
			State:  entity.StateExhausted,
			Cursor: next,
		}, nil

	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Action must be \"accept\" or \"reject\"", nil)
	}
}
