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

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, description, sku, barcode, quantity, min_stock, max_stock,
	cost, price, category, image, notes, created_at, updated_at`

// nullIfEmpty maps the domain's empty-string-means-absent convention to
// SQL NULL so the unique constraints on sku/barcode ignore absent values.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (id, name, description, sku, barcode, quantity, min_stock, max_stock,
			cost, price, category, image, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`, p.ID, p.Name, p.Description, nullIfEmpty(p.Sku), nullIfEmpty(p.Barcode),
		p.Quantity, p.MinStock, p.MaxStock, p.Cost, p.Price, p.Category,
		nullIfEmpty(p.Image), nullIfEmpty(p.Notes), p.CreatedAt, p.UpdatedAt)

	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *ProductRepository) GetBySku(ctx context.Context, sku string) (*entity.Product, error) {
	return r.getBy(ctx, "sku = $1", sku)
}

func (r *ProductRepository) getBy(ctx context.Context, where, arg string) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE `+where, arg)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.NewProductNotFound(arg)
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var sku, barcode, image, notes *string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &sku, &barcode,
		&p.Quantity, &p.MinStock, &p.MaxStock, &p.Cost, &p.Price, &p.Category,
		&image, &notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Sku = orEmpty(sku)
	p.Barcode = orEmpty(barcode)
	p.Image = orEmpty(image)
	p.Notes = orEmpty(notes)
	return entity.ReconstituteProduct(p), nil
}

// Update is declared by the port but has no implemented semantics yet.
func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return fmt.Errorf("product repository update: %w", errNotImplemented)
}

// Delete is declared by the port but has no implemented semantics yet.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return fmt.Errorf("product repository delete: %w", errNotImplemented)
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
