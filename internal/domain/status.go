package domain

// Trigger represents an event that can move a proposal between statuses
type Trigger string

const (
	TriggerSend    Trigger = "send"
	TriggerView    Trigger = "view"
	TriggerSign    Trigger = "sign"
	TriggerDecline Trigger = "decline"
	TriggerExpire  Trigger = "expire"
)

// transitions is the single source of truth for the lifecycle state machine.
// Status writes happen only through NextStatus; call sites never assign
// statuses ad hoc.
var transitions = map[Trigger]map[ProposalStatus]ProposalStatus{
	TriggerSend: {
		ProposalStatusDraft:  ProposalStatusSent,
		ProposalStatusSent:   ProposalStatusSent,
		ProposalStatusViewed: ProposalStatusSent,
		ProposalStatusOnHold: ProposalStatusSent,
	},
	TriggerView: {
		ProposalStatusSent: ProposalStatusViewed,
	},
	TriggerSign: {
		ProposalStatusSent:   ProposalStatusAccepted,
		ProposalStatusViewed: ProposalStatusAccepted,
		ProposalStatusOnHold: ProposalStatusAccepted,
	},
	TriggerDecline: {
		ProposalStatusSent:   ProposalStatusDeclined,
		ProposalStatusViewed: ProposalStatusDeclined,
		ProposalStatusOnHold: ProposalStatusDeclined,
	},
	TriggerExpire: {
		ProposalStatusDraft:  ProposalStatusExpired,
		ProposalStatusSent:   ProposalStatusExpired,
		ProposalStatusViewed: ProposalStatusExpired,
		ProposalStatusOnHold: ProposalStatusExpired,
	},
}

// NextStatus validates a (current, trigger) pair and returns the resulting
// status. The second return value is false for disallowed transitions, in
// which case the current status must be retained.
func NextStatus(current ProposalStatus, trigger Trigger) (ProposalStatus, bool) {
	next, ok := transitions[trigger][current]
	return next, ok
}

// IsTerminal reports whether a status permits no further lifecycle triggers
func (s ProposalStatus) IsTerminal() bool {
	switch s {
	case ProposalStatusAccepted, ProposalStatusDeclined, ProposalStatusExpired:
		return true
	}
	return false
}

// IsEditable reports whether proposal content may still be mutated
func (s ProposalStatus) IsEditable() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusViewed, ProposalStatusOnHold:
		return true
	}
	return false
}

// IsUserSettable reports whether an owner may set this status directly.
// "viewed" and "expired" are system-only.
func (s ProposalStatus) IsUserSettable() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusOnHold,
		ProposalStatusAccepted, ProposalStatusDeclined:
		return true
	}
	return false
}

// CanSetDirectly reports whether an owner may move a proposal from its
// current status to target with an explicit status-set operation.
// Terminal states reject direct changes.
func (s ProposalStatus) CanSetDirectly(target ProposalStatus) bool {
	if s.IsTerminal() {
		return false
	}
	return target.IsUserSettable()
}
