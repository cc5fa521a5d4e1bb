package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/utpal5/Ticketingsystem/internal/domain"
	"github.com/utpal5/Ticketingsystem/internal/events"
	"github.com/utpal5/Ticketingsystem/internal/repository"
)

type fakeUserRepo struct {
	nextID   int64
	accounts map[int64]*repository.Account
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, accounts: make(map[int64]*repository.Account)}
}

func (r *fakeUserRepo) add(identity domain.Identity, hash string) *repository.Account {
	account := &repository.Account{Identity: identity, PasswordHash: hash}
	if account.Identity.ID == 0 {
		account.Identity.ID = r.nextID
		r.nextID++
	} else if account.Identity.ID >= r.nextID {
		r.nextID = account.Identity.ID + 1
	}
	r.accounts[account.Identity.ID] = account
	return account
}

func (r *fakeUserRepo) Create(_ context.Context, account *repository.Account) error {
	account.Identity.ID = r.nextID
	account.Identity.CreatedAt = time.Now()
	r.nextID++
	stored := *account
	r.accounts[account.Identity.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*repository.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*repository.Account, error) {
	for _, account := range r.accounts {
		if account.Identity.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.Identity, error) {
	out := make([]domain.Identity, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account.Identity)
	}
	return out, nil
}

func (r *fakeUserRepo) ListSupport(_ context.Context) ([]domain.Identity, error) {
	out := make([]domain.Identity, 0)
	for _, account := range r.accounts {
		if account.Identity.Role.IsSupport() {
			out = append(out, account.Identity)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) (*domain.Identity, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	account.Identity.Role = role
	copied := account.Identity
	return &copied, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.accounts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.accounts, id)
	return nil
}

type fakeTicketRepo struct {
	nextID  int64
	tickets map[int64]*domain.Ticket
	users   *fakeUserRepo
}

func newFakeTicketRepo(users *fakeUserRepo) *fakeTicketRepo {
	return &fakeTicketRepo{nextID: 1, tickets: make(map[int64]*domain.Ticket), users: users}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	ticket.ID = r.nextID
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	r.nextID++
	stored := *ticket
	r.tickets[ticket.ID] = &stored
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	return &copied, nil
}

func (r *fakeTicketRepo) ListAll(_ context.Context) ([]domain.Ticket, error) {
	out := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		out = append(out, *ticket)
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByCreator(_ context.Context, creatorID int64) ([]domain.Ticket, error) {
	out := make([]domain.Ticket, 0)
	for _, ticket := range r.tickets {
		if ticket.CreatedBy.ID == creatorID {
			out = append(out, *ticket)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByAssignee(_ context.Context, assigneeID int64) ([]domain.Ticket, error) {
	out := make([]domain.Ticket, 0)
	for _, ticket := range r.tickets {
		if ticket.AssignedTo != nil && ticket.AssignedTo.ID == assigneeID {
			out = append(out, *ticket)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) UpdateStatus(_ context.Context, id int64, status domain.TicketStatus) error {
	ticket, ok := r.tickets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	ticket.Status = status
	ticket.UpdatedAt = time.Now()
	return nil
}

func (r *fakeTicketRepo) UpdateAssignee(_ context.Context, id, assigneeID int64) error {
	ticket, ok := r.tickets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account, ok := r.users.accounts[assigneeID]
	if !ok {
		return pgx.ErrNoRows
	}
	identity := account.Identity
	ticket.AssignedTo = &identity
	ticket.UpdatedAt = time.Now()
	return nil
}

type fakeCommentRepo struct {
	nextID   int64
	comments map[int64][]domain.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1, comments: make(map[int64][]domain.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	comment.ID = r.nextID
	comment.CreatedAt = time.Now()
	r.nextID++
	r.comments[comment.TicketID] = append(r.comments[comment.TicketID], *comment)
	return nil
}

func (r *fakeCommentRepo) ListByTicket(_ context.Context, ticketID int64) ([]domain.Comment, error) {
	return append([]domain.Comment{}, r.comments[ticketID]...), nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}
