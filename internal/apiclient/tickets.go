package apiclient

import (
	"context"
	"fmt"

	"github.com/utpal5/Ticketingsystem/internal/domain"
)

// CreateTicketRequest carries the POST /tickets payload. Status is
// server-assigned and always starts OPEN.
type CreateTicketRequest struct {
	Subject     string                `json:"subject"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority"`
}

type updateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

type assignRequest struct {
	AssigneeID int64 `json:"assigneeId"`
}

type addCommentRequest struct {
	Content string `json:"content"`
}

// MyTickets lists tickets created by the caller.
func (c *Client) MyTickets(ctx context.Context) ([]domain.Ticket, error) {
	var out []domain.Ticket
	if err := c.doJSON(ctx, "GET", "/tickets/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllTickets lists every ticket. Admin-only server-side.
func (c *Client) AllTickets(ctx context.Context) ([]domain.Ticket, error) {
	var out []domain.Ticket
	if err := c.doJSON(ctx, "GET", "/tickets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignedTickets lists tickets assigned to the caller.
func (c *Client) AssignedTickets(ctx context.Context) ([]domain.Ticket, error) {
	var out []domain.Ticket
	if err := c.doJSON(ctx, "GET", "/tickets/assigned", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ticket fetches one ticket by id.
func (c *Client) Ticket(ctx context.Context, id int64) (*domain.Ticket, error) {
	var out domain.Ticket
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/tickets/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTicket files a new ticket for the caller.
func (c *Client) CreateTicket(ctx context.Context, req CreateTicketRequest) (*domain.Ticket, error) {
	var out domain.Ticket
	if err := c.doJSON(ctx, "POST", "/tickets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTicketStatus sets the ticket's status.
func (c *Client) UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	var out domain.Ticket
	if err := c.doJSON(ctx, "PATCH", fmt.Sprintf("/tickets/%d/status", id), updateStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignTicket sets the ticket's assignee.
func (c *Client) AssignTicket(ctx context.Context, id, assigneeID int64) (*domain.Ticket, error) {
	var out domain.Ticket
	if err := c.doJSON(ctx, "PATCH", fmt.Sprintf("/tickets/%d/assign", id), assignRequest{AssigneeID: assigneeID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TicketComments lists a ticket's comments in creation order.
func (c *Client) TicketComments(ctx context.Context, ticketID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/tickets/%d/comments", ticketID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddComment appends a comment to the ticket.
func (c *Client) AddComment(ctx context.Context, ticketID int64, content string) (*domain.Comment, error) {
	var out domain.Comment
	if err := c.doJSON(ctx, "POST", fmt.Sprintf("/tickets/%d/comments", ticketID), addCommentRequest{Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
