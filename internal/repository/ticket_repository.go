package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/utpal5/Ticketingsystem/internal/domain"
)

// TicketRepository defines persistence access for tickets. Tickets are
// never deleted; only status and assignee change after creation.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	ListAll(ctx context.Context) ([]domain.Ticket, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]domain.Ticket, error)
	ListByAssignee(ctx context.Context, assigneeID int64) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) error
	UpdateAssignee(ctx context.Context, id, assigneeID int64) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository returns a Postgres-backed implementation.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

// ticketSelect joins the creator and optional assignee so a ticket row
// carries full identities the way the API exposes them.
const ticketSelect = `
    SELECT t.id, t.subject, t.description, t.priority, t.status, t.created_at, t.updated_at,
           c.id, c.username, c.email, c.first_name, c.last_name, c.role, c.created_at,
           a.id, a.username, a.email, a.first_name, a.last_name, a.role, a.created_at
    FROM tickets t
    JOIN users c ON c.id = t.created_by
    LEFT JOIN users a ON a.id = t.assigned_to`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (subject, description, priority, status, created_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		ticket.Subject,
		ticket.Description,
		ticket.Priority,
		ticket.Status,
		ticket.CreatedBy.ID,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	row := r.pool.QueryRow(ctx, ticketSelect+` WHERE t.id=$1`, id)
	ticket, err := scanTicket(row)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return r.list(ctx, ticketSelect+` ORDER BY t.created_at DESC`)
}

func (r *ticketRepository) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Ticket, error) {
	return r.list(ctx, ticketSelect+` WHERE t.created_by=$1 ORDER BY t.created_at DESC`, creatorID)
}

func (r *ticketRepository) ListByAssignee(ctx context.Context, assigneeID int64) ([]domain.Ticket, error) {
	return r.list(ctx, ticketSelect+` WHERE t.assigned_to=$1 ORDER BY t.created_at DESC`, assigneeID)
}

func (r *ticketRepository) list(ctx context.Context, query string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, rows.Err()
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		ticket   domain.Ticket
		creator  domain.Identity
		assignee struct {
			ID        *int64
			Username  *string
			Email     *string
			FirstName *string
			LastName  *string
			Role      *domain.Role
			CreatedAt *time.Time
		}
	)
	if err := row.Scan(
		&ticket.ID, &ticket.Subject, &ticket.Description, &ticket.Priority, &ticket.Status,
		&ticket.CreatedAt, &ticket.UpdatedAt,
		&creator.ID, &creator.Username, &creator.Email, &creator.FirstName, &creator.LastName,
		&creator.Role, &creator.CreatedAt,
		&assignee.ID, &assignee.Username, &assignee.Email, &assignee.FirstName, &assignee.LastName,
		&assignee.Role, &assignee.CreatedAt,
	); err != nil {
		return nil, err
	}

	ticket.CreatedBy = creator
	if assignee.ID != nil {
		ticket.AssignedTo = &domain.Identity{
			ID:        *assignee.ID,
			Username:  *assignee.Username,
			Email:     *assignee.Email,
			FirstName: *assignee.FirstName,
			LastName:  *assignee.LastName,
			Role:      *assignee.Role,
			CreatedAt: *assignee.CreatedAt,
		}
	}
	return &ticket, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE tickets SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) UpdateAssignee(ctx context.Context, id, assigneeID int64) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE tickets SET assigned_to=$1, updated_at=NOW() WHERE id=$2`, assigneeID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
