package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets. Transitions are
// unrestricted: any status may be set from any other, so closed tickets
// can be reopened freely.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// Valid reports whether the status is one of the four known values.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency, orthogonal to status.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"
)

// Valid reports whether the priority is one of the four known values.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. CreatedBy is set once at
// creation and never changes; AssignedTo is optional and must hold a
// support-capable role when present.
type Ticket struct {
	ID          int64          `json:"id"`
	Subject     string         `json:"subject"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	CreatedBy   Identity       `json:"createdBy"`
	AssignedTo  *Identity      `json:"assignedTo,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
