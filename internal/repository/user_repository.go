package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/utpal5/Ticketingsystem/internal/domain"
)

// Account pairs a public identity with its stored credential hash. The
// hash never leaves the repository/service boundary.
type Account struct {
	Identity     domain.Identity
	PasswordHash string
}

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id int64) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	List(ctx context.Context) ([]domain.Identity, error)
	ListSupport(ctx context.Context) ([]domain.Identity, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.Identity, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, account *Account) error {
	const query = `
        INSERT INTO users (username, email, first_name, last_name, password_hash, role)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		account.Identity.Username,
		account.Identity.Email,
		account.Identity.FirstName,
		account.Identity.LastName,
		account.PasswordHash,
		account.Identity.Role,
	).Scan(&account.Identity.ID, &account.Identity.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*Account, error) {
	const query = `
        SELECT id, username, email, first_name, last_name, password_hash, role, created_at
        FROM users WHERE id=$1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	const query = `
        SELECT id, username, email, first_name, last_name, password_hash, role, created_at
        FROM users WHERE username=$1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) scanAccount(row pgx.Row) (*Account, error) {
	var account Account
	if err := row.Scan(
		&account.Identity.ID,
		&account.Identity.Username,
		&account.Identity.Email,
		&account.Identity.FirstName,
		&account.Identity.LastName,
		&account.PasswordHash,
		&account.Identity.Role,
		&account.Identity.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.Identity, error) {
	const query = `
        SELECT id, username, email, first_name, last_name, role, created_at
        FROM users ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIdentities(rows)
}

func (r *userRepository) ListSupport(ctx context.Context) ([]domain.Identity, error) {
	const query = `
        SELECT id, username, email, first_name, last_name, role, created_at
        FROM users WHERE role = ANY($1) ORDER BY id`
	rows, err := r.pool.Query(ctx, query, []string{string(domain.RoleSupportAgent), string(domain.RoleAdmin)})
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIdentities(rows)
}

func scanIdentities(rows pgx.Rows) ([]domain.Identity, error) {
	identities := make([]domain.Identity, 0)
	for rows.Next() {
		var identity domain.Identity
		if err := rows.Scan(
			&identity.ID,
			&identity.Username,
			&identity.Email,
			&identity.FirstName,
			&identity.LastName,
			&identity.Role,
			&identity.CreatedAt,
		); err != nil {
			return nil, err
		}
		identities = append(identities, identity)
	}
	return identities, rows.Err()
}

func (r *userRepository) UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.Identity, error) {
	const query = `
        UPDATE users SET role=$1 WHERE id=$2
        RETURNING id, username, email, first_name, last_name, role, created_at`

	var identity domain.Identity
	if err := r.pool.QueryRow(ctx, query, role, id).Scan(
		&identity.ID,
		&identity.Username,
		&identity.Email,
		&identity.FirstName,
		&identity.LastName,
		&identity.Role,
		&identity.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
