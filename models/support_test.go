package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyResponseTransition(t *testing.T) {
	tests := []struct {
		name    string
		status  TicketStatus
		isAdmin bool
		want    TicketStatus
	}{
		{"user reply reopens resolved", TicketStatusResolved, false, TicketStatusOpen},
		{"user reply reopens closed", TicketStatusClosed, false, TicketStatusOpen},
		{"user reply keeps open", TicketStatusOpen, false, TicketStatusOpen},
		{"user reply keeps in_progress", TicketStatusInProgress, false, TicketStatusInProgress},
		{"admin reply advances open", TicketStatusOpen, true, TicketStatusInProgress},
		{"admin reply keeps in_progress", TicketStatusInProgress, true, TicketStatusInProgress},
		{"admin reply keeps resolved", TicketStatusResolved, true, TicketStatusResolved},
		{"admin reply keeps waiting_response", TicketStatusWaitingResponse, true, TicketStatusWaitingResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := &SupportTicket{Status: tt.status}
			ticket.ApplyResponseTransition(tt.isAdmin)
			assert.Equal(t, tt.want, ticket.Status)
		})
	}
}

func TestApplyResponseTransitionScenario(t *testing.T) {
	// A resolved ticket reopened by the user, then picked up by an admin
	ticket := &SupportTicket{Status: TicketStatusResolved}

	ticket.ApplyResponseTransition(false)
	assert.Equal(t, TicketStatusOpen, ticket.Status)

	ticket.ApplyResponseTransition(true)
	assert.Equal(t, TicketStatusInProgress, ticket.Status)
}

func TestReopenClearsResolutionStamps(t *testing.T) {
	ticket := &SupportTicket{Status: TicketStatusOpen}

	ticket.SetStatus(TicketStatusResolved)
	assert.NotNil(t, ticket.ResolvedAt)

	ticket.ApplyResponseTransition(false)
	assert.Equal(t, TicketStatusOpen, ticket.Status)
	assert.Nil(t, ticket.ResolvedAt)
}

func TestSetStatusStampsOnce(t *testing.T) {
	ticket := &SupportTicket{Status: TicketStatusOpen}

	ticket.SetStatus(TicketStatusResolved)
	firstStamp := ticket.ResolvedAt
	assert.NotNil(t, firstStamp)

	ticket.SetStatus(TicketStatusClosed)
	assert.NotNil(t, ticket.ClosedAt)
	assert.Equal(t, firstStamp, ticket.ResolvedAt, "resolution stamp must not move")
}
