package entity

// NegotiationState names where a group is in settling on a meeting slot.
type NegotiationState string

const (
	// StateProposing means a candidate is on the table at the cursor.
	StateProposing NegotiationState = "proposing"
	// StateLocked means a candidate was accepted and persisted.
	StateLocked NegotiationState = "locked"
	// StateExhausted means every candidate was rejected.
	StateExhausted NegotiationState = "exhausted"
)

// Negotiation action tokens. Matching is case-sensitive.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// NegotiationOutcome is the result of advancing the negotiation one step.
type NegotiationOutcome struct {
	State NegotiationState
	// Cursor indexes the next candidate while proposing.
	Cursor int
	// Locked is set only when State is StateLocked.
	Locked *SlotCandidate
}
