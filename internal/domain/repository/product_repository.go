package repository

import (
	"context"

	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
)

// ProductRepository is the persistence port for the Product aggregate.
// Lookups return a KindProductNotFound domain error when no row matches.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySku(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
}
