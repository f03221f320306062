package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name    string
		current ProposalStatus
		trigger Trigger
		want    ProposalStatus
		allowed bool
	}{
		{"send from draft", ProposalStatusDraft, TriggerSend, ProposalStatusSent, true},
		{"resend from sent", ProposalStatusSent, TriggerSend, ProposalStatusSent, true},
		{"resend from viewed resets to sent", ProposalStatusViewed, TriggerSend, ProposalStatusSent, true},
		{"send from on_hold", ProposalStatusOnHold, TriggerSend, ProposalStatusSent, true},
		{"send from accepted rejected", ProposalStatusAccepted, TriggerSend, "", false},
		{"send from declined rejected", ProposalStatusDeclined, TriggerSend, "", false},
		{"send from expired rejected", ProposalStatusExpired, TriggerSend, "", false},

		{"view from sent", ProposalStatusSent, TriggerView, ProposalStatusViewed, true},
		{"view from viewed no-op", ProposalStatusViewed, TriggerView, "", false},
		{"view from draft rejected", ProposalStatusDraft, TriggerView, "", false},
		{"view from on_hold rejected", ProposalStatusOnHold, TriggerView, "", false},

		{"sign from sent", ProposalStatusSent, TriggerSign, ProposalStatusAccepted, true},
		{"sign from viewed", ProposalStatusViewed, TriggerSign, ProposalStatusAccepted, true},
		{"sign from on_hold", ProposalStatusOnHold, TriggerSign, ProposalStatusAccepted, true},
		{"sign from draft rejected", ProposalStatusDraft, TriggerSign, "", false},
		{"sign from accepted rejected", ProposalStatusAccepted, TriggerSign, "", false},
		{"sign from expired rejected", ProposalStatusExpired, TriggerSign, "", false},

		{"decline from sent", ProposalStatusSent, TriggerDecline, ProposalStatusDeclined, true},
		{"decline from viewed", ProposalStatusViewed, TriggerDecline, ProposalStatusDeclined, true},
		{"decline from on_hold", ProposalStatusOnHold, TriggerDecline, ProposalStatusDeclined, true},
		{"decline from declined rejected", ProposalStatusDeclined, TriggerDecline, "", false},

		{"expire from draft", ProposalStatusDraft, TriggerExpire, ProposalStatusExpired, true},
		{"expire from sent", ProposalStatusSent, TriggerExpire, ProposalStatusExpired, true},
		{"expire from viewed", ProposalStatusViewed, TriggerExpire, ProposalStatusExpired, true},
		{"expire from on_hold", ProposalStatusOnHold, TriggerExpire, ProposalStatusExpired, true},
		{"expire from accepted rejected", ProposalStatusAccepted, TriggerExpire, "", false},
		{"expire from declined rejected", ProposalStatusDeclined, TriggerExpire, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextStatus(tt.current, tt.trigger)
			assert.Equal(t, tt.allowed, ok)
			if tt.allowed {
				assert.Equal(t, tt.want, next)
			}
		})
	}
}

func TestProposalStatus_IsTerminal(t *testing.T) {
	assert.True(t, ProposalStatusAccepted.IsTerminal())
	assert.True(t, ProposalStatusDeclined.IsTerminal())
	assert.True(t, ProposalStatusExpired.IsTerminal())
	assert.False(t, ProposalStatusDraft.IsTerminal())
	assert.False(t, ProposalStatusSent.IsTerminal())
	assert.False(t, ProposalStatusViewed.IsTerminal())
	assert.False(t, ProposalStatusOnHold.IsTerminal())
}

func TestProposalStatus_IsEditable(t *testing.T) {
	assert.True(t, ProposalStatusDraft.IsEditable())
	assert.True(t, ProposalStatusSent.IsEditable())
	assert.True(t, ProposalStatusViewed.IsEditable())
	assert.True(t, ProposalStatusOnHold.IsEditable())
	assert.False(t, ProposalStatusAccepted.IsEditable())
	assert.False(t, ProposalStatusDeclined.IsEditable())
	assert.False(t, ProposalStatusExpired.IsEditable())
}

func TestProposalStatus_CanSetDirectly(t *testing.T) {
	// Owners can hold and resume, and record out-of-band outcomes.
	assert.True(t, ProposalStatusSent.CanSetDirectly(ProposalStatusOnHold))
	assert.True(t, ProposalStatusOnHold.CanSetDirectly(ProposalStatusSent))
	assert.True(t, ProposalStatusViewed.CanSetDirectly(ProposalStatusAccepted))
	assert.True(t, ProposalStatusSent.CanSetDirectly(ProposalStatusDeclined))

	// System-only statuses are never directly settable.
	assert.False(t, ProposalStatusSent.CanSetDirectly(ProposalStatusViewed))
	assert.False(t, ProposalStatusSent.CanSetDirectly(ProposalStatusExpired))

	// Terminal states reject any direct change.
	assert.False(t, ProposalStatusAccepted.CanSetDirectly(ProposalStatusDraft))
	assert.False(t, ProposalStatusExpired.CanSetDirectly(ProposalStatusSent))
	assert.False(t, ProposalStatusDeclined.CanSetDirectly(ProposalStatusOnHold))
}
