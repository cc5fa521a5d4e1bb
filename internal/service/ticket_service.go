package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/utpal5/Ticketingsystem/internal/authz"
	"github.com/utpal5/Ticketingsystem/internal/domain"
	"github.com/utpal5/Ticketingsystem/internal/events"
	"github.com/utpal5/Ticketingsystem/internal/repository"
	"github.com/utpal5/Ticketingsystem/pkg/util"
)

// TicketService coordinates ticket workflows. Every mutation re-checks
// the authz predicates server-side; the client's checks are UX only.
type TicketService struct {
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	CommentRepo repository.CommentRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		comments:   deps.CommentRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicketInput describes the ticket creation payload.
type CreateTicketInput struct {
	Subject     string
	Description string
	Priority    domain.TicketPriority
}

// Create files a new ticket for the caller. Status always starts OPEN.
func (s *TicketService) Create(ctx context.Context, creator *domain.Identity, input CreateTicketInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, util.NewValidationError("subject and description required", nil)
	}
	if !input.Priority.Valid() {
		return nil, util.NewValidationError("invalid priority", map[string]any{"priority": input.Priority})
	}

	ticket := &domain.Ticket{
		Subject:     input.Subject,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      domain.TicketStatusOpen,
		CreatedBy:   *creator,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketCreated, ticket.ID, creator, events.TicketCreatedPayload{
		Subject:  ticket.Subject,
		Priority: ticket.Priority,
	})
	return ticket, nil
}

// ListMine lists tickets created by the caller.
func (s *TicketService) ListMine(ctx context.Context, identity *domain.Identity) ([]domain.Ticket, error) {
	if !authz.CanView(identity, authz.ScopeOwn) {
		return nil, util.NewForbidden("authentication required")
	}
	return s.tickets.ListByCreator(ctx, identity.ID)
}

// ListAssigned lists tickets assigned to the caller.
func (s *TicketService) ListAssigned(ctx context.Context, identity *domain.Identity) ([]domain.Ticket, error) {
	if !authz.CanView(identity, authz.ScopeAssigned) {
		return nil, util.NewForbidden("support role required")
	}
	return s.tickets.ListByAssignee(ctx, identity.ID)
}

// ListAll lists every ticket.
func (s *TicketService) ListAll(ctx context.Context, identity *domain.Identity) ([]domain.Ticket, error) {
	if !authz.CanView(identity, authz.ScopeAll) {
		return nil, util.NewForbidden("admin role required")
	}
	return s.tickets.ListAll(ctx)
}

// Get fetches one ticket, restricted to its creator, its assignee, and
// admins.
func (s *TicketService) Get(ctx context.Context, identity *domain.Identity, id int64) (*domain.Ticket, error) {
	ticket, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewTicket(identity, ticket) {
		return nil, util.NewForbidden("no access to this ticket")
	}
	return ticket, nil
}

// UpdateStatus sets the ticket status. Transitions are deliberately
// unrestricted, so closed tickets may be reopened.
func (s *TicketService) UpdateStatus(ctx context.Context, identity *domain.Identity, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	if !status.Valid() {
		return nil, util.NewValidationError("invalid status", map[string]any{"status": status})
	}

	ticket, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanChangeStatus(identity, ticket) {
		return nil, util.NewForbidden("no permission to change ticket status")
	}

	oldStatus := ticket.Status
	if err := s.tickets.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketStatusChanged, id, identity, events.TicketStatusChangedPayload{
		OldStatus: oldStatus,
		NewStatus: status,
	})
	return s.load(ctx, id)
}

// Assign sets the ticket assignee. Only support-capable accounts are
// eligible.
func (s *TicketService) Assign(ctx context.Context, identity *domain.Identity, id, assigneeID int64) (*domain.Ticket, error) {
	ticket, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAssign(identity, ticket) {
		return nil, util.NewForbidden("no permission to assign this ticket")
	}

	assignee, err := s.users.GetByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("assignee", map[string]any{"id": assigneeID})
		}
		return nil, err
	}
	if !assignee.Identity.Role.IsSupport() {
		return nil, util.NewValidationError("can only assign tickets to support agents or admins", nil)
	}

	if err := s.tickets.UpdateAssignee(ctx, id, assigneeID); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketAssigned, id, identity, events.TicketAssignedPayload{
		AssigneeID: assigneeID,
	})
	return s.load(ctx, id)
}

// Comments lists a ticket's comments, visible to whoever may view the
// ticket.
func (s *TicketService) Comments(ctx context.Context, identity *domain.Identity, ticketID int64) ([]domain.Comment, error) {
	ticket, err := s.load(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !canViewTicket(identity, ticket) {
		return nil, util.NewForbidden("no access to this ticket")
	}
	return s.comments.ListByTicket(ctx, ticketID)
}

// AddComment appends a comment to the ticket.
func (s *TicketService) AddComment(ctx context.Context, identity *domain.Identity, ticketID int64, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, util.NewValidationError("content required", nil)
	}

	ticket, err := s.load(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !authz.CanComment(identity, ticket) {
		return nil, util.NewForbidden("no permission to comment on this ticket")
	}

	comment := &domain.Comment{
		TicketID: ticketID,
		Author:   *identity,
		Content:  content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	preview := content
	if len(preview) > 80 {
		preview = preview[:80]
	}
	s.publish(ctx, events.EventCommentAdded, ticketID, identity, events.CommentAddedPayload{
		CommentID:   comment.ID,
		BodyPreview: preview,
	})
	return comment, nil
}

func (s *TicketService) load(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, ticketID int64, actor *domain.Identity, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		TicketID:  ticketID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// canViewTicket gates single-ticket reads: creator, assignee, admin.
func canViewTicket(identity *domain.Identity, ticket *domain.Ticket) bool {
	if identity == nil {
		return false
	}
	if identity.Role == domain.RoleAdmin || ticket.CreatedBy.ID == identity.ID {
		return true
	}
	return ticket.AssignedTo != nil && ticket.AssignedTo.ID == identity.ID
}
