package dto

import "github.com/utpal5/Ticketingsystem/internal/domain"

// CreateTicketRequest carries ticket creation payload. Status is
// server-assigned.
type CreateTicketRequest struct {
	Subject     string                `json:"subject"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority"`
}

// UpdateStatusRequest carries a status change.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// AssignRequest carries an assignment change.
type AssignRequest struct {
	AssigneeID int64 `json:"assigneeId"`
}

// CommentRequest carries a new comment body.
type CommentRequest struct {
	Content string `json:"content"`
}
