package models

import (
	"time"

	"gorm.io/gorm"
)

// TicketStatus defines the lifecycle state of a support ticket
type TicketStatus string

const (
	TicketStatusOpen            TicketStatus = "open"
	TicketStatusInProgress      TicketStatus = "in_progress"
	TicketStatusWaitingResponse TicketStatus = "waiting_response"
	TicketStatusResolved        TicketStatus = "resolved"
	TicketStatusClosed          TicketStatus = "closed"
)

// TicketPriority defines the urgency of a support ticket
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketCategory classifies a support ticket
type TicketCategory string

const (
	TicketCategoryTechnical      TicketCategory = "technical"
	TicketCategoryBilling        TicketCategory = "billing"
	TicketCategoryFeatureRequest TicketCategory = "feature_request"
	TicketCategoryBugReport      TicketCategory = "bug_report"
	TicketCategoryAccount        TicketCategory = "account"
	TicketCategoryOther          TicketCategory = "other"
)

var ValidTicketStatuses = map[TicketStatus]bool{
	TicketStatusOpen:            true,
	TicketStatusInProgress:      true,
	TicketStatusWaitingResponse: true,
	TicketStatusResolved:        true,
	TicketStatusClosed:          true,
}

var ValidTicketPriorities = map[TicketPriority]bool{
	TicketPriorityLow:    true,
	TicketPriorityMedium: true,
	TicketPriorityHigh:   true,
	TicketPriorityUrgent: true,
}

var ValidTicketCategories = map[TicketCategory]bool{
	TicketCategoryTechnical:      true,
	TicketCategoryBilling:        true,
	TicketCategoryFeatureRequest: true,
	TicketCategoryBugReport:      true,
	TicketCategoryAccount:        true,
	TicketCategoryOther:          true,
}

// SupportTicket is a user-filed support request with a threaded response history
type SupportTicket struct {
	gorm.Model
	TicketNumber string         `gorm:"uniqueIndex;not null" json:"ticketNumber"`
	UserID       uint           `gorm:"not null;index" json:"userId"`
	UserEmail    string         `gorm:"not null" json:"userEmail"`
	UserName     string         `gorm:"not null" json:"userName"`
	Subject      string         `gorm:"not null" json:"subject"`
	Category     TicketCategory `gorm:"type:varchar(50);default:'other'" json:"category"`
	Priority     TicketPriority `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	Status       TicketStatus   `gorm:"type:varchar(30);default:'open';index" json:"status"`
	Description  string         `gorm:"type:text;not null" json:"description"`

	Responses []TicketResponse `gorm:"foreignKey:TicketID" json:"responses"`

	AssignedTo     *uint      `json:"assignedTo"`
	AssignedToName string     `json:"assignedToName"`
	ResolvedAt     *time.Time `json:"resolvedAt"`
	ClosedAt       *time.Time `json:"closedAt"`
	Tags           string     `gorm:"type:text" json:"tags"` // comma separated

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}

// TicketResponse is one message in a ticket's thread. Append-only, ordered by creation.
type TicketResponse struct {
	gorm.Model
	TicketID       uint   `gorm:"not null;index" json:"ticketId"`
	ResponderID    uint   `gorm:"not null" json:"responderId"`
	ResponderName  string `json:"responderName"`
	ResponderEmail string `json:"responderEmail"`
	IsAdmin        bool   `gorm:"default:false" json:"isAdmin"`
	Message        string `gorm:"type:text;not null" json:"message"`
}

func (TicketResponse) TableName() string {
	return "ticket_responses"
}

// ApplyResponseTransition moves the ticket status when a reply lands on it.
// A user reply on a resolved or closed ticket reopens it; an admin reply on an
// open ticket moves it to in_progress.
func (t *SupportTicket) ApplyResponseTransition(isAdmin bool) {
	if isAdmin {
		if t.Status == TicketStatusOpen {
			t.Status = TicketStatusInProgress
		}
		return
	}
	if t.Status == TicketStatusResolved || t.Status == TicketStatusClosed {
		t.Status = TicketStatusOpen
		t.ResolvedAt = nil
		t.ClosedAt = nil
	}
}

// SetStatus applies an admin-driven status change, stamping resolution and
// close timestamps the first time those states are reached.
func (t *SupportTicket) SetStatus(status TicketStatus) {
	t.Status = status
	now := time.Now()
	if status == TicketStatusResolved && t.ResolvedAt == nil {
		t.ResolvedAt = &now
	}
	if status == TicketStatusClosed && t.ClosedAt == nil {
		t.ClosedAt = &now
	}
}
