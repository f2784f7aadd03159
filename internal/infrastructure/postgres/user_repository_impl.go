package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
	"github.com/llOrtegall/backend-app-full-stack/internal/domain/repository"
)

var errNotImplemented = errors.New("not implemented")

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, u.ID, u.Name, u.Email, u.Password, u.Role, u.IsActive, u.CreatedAt, u.UpdatedAt)

	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *UserRepository) getBy(ctx context.Context, where, arg string) (*entity.User, error) {
	var u entity.User
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password, role, is_active, created_at, updated_at
		FROM users
		WHERE `+where, arg)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.NewUserNotFound(arg)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return entity.ReconstituteUser(u), nil
}

// Update is declared by the port but has no implemented semantics yet.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	return fmt.Errorf("user repository update: %w", errNotImplemented)
}

// Delete is declared by the port but has no implemented semantics yet.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return fmt.Errorf("user repository delete: %w", errNotImplemented)
}

var _ repository.UserRepository = (*UserRepository)(nil)
