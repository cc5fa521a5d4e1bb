package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/utpal5/Ticketingsystem/internal/domain"
)

// CommentRepository defines persistence access for ticket comments.
// Comments are append-only: there is no update or delete.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByTicket(ctx context.Context, ticketID int64) ([]domain.Comment, error)
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (ticket_id, author_id, content)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		comment.TicketID,
		comment.Author.ID,
		comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) ListByTicket(ctx context.Context, ticketID int64) ([]domain.Comment, error) {
	const query = `
        SELECT m.id, m.ticket_id, m.content, m.created_at,
               u.id, u.username, u.email, u.first_name, u.last_name, u.role, u.created_at
        FROM comments m
        JOIN users u ON u.id = m.author_id
        WHERE m.ticket_id=$1
        ORDER BY m.created_at, m.id`

	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID, &comment.TicketID, &comment.Content, &comment.CreatedAt,
			&comment.Author.ID, &comment.Author.Username, &comment.Author.Email,
			&comment.Author.FirstName, &comment.Author.LastName,
			&comment.Author.Role, &comment.Author.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
