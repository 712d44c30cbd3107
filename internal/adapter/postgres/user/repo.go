// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/macrolog/macrolog-backend/internal/adapter/postgres"
	"github.com/macrolog/macrolog-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, username, name, password_hash, role, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, email, username, name, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + userColumns

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

// Create inserts a new user. Duplicate email maps to ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Username, u.Name, u.PasswordHash, u.Role, u.CreatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// GetByID returns one user by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns one user by email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// List returns users ordered by creation time with limit/offset pagination.
// limit <= 0 means no limit. Used by the admin overview.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	builder := sq.Select("id", "email", "username", "name", "password_hash", "role", "created_at", "updated_at").
		From("users").
		OrderBy("created_at").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanUser(row scannable) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.PasswordHash,
		&u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
