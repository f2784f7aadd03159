package repository

import (
	"context"

	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
)

// UserRepository is the persistence port for the User aggregate.
// Create fills storage-reported fields (timestamps) back into u. Lookups
// return a KindUserNotFound domain error when no row matches; any other
// error is an infrastructure failure.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
