package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewProductInput carries raw product data into the product factory.
// Sku, Barcode, Image and Notes are optional strings (empty means not
// supplied); MaxStock and Cost are optional numerics.
type NewProductInput struct {
	Name        string
	Description string
	Sku         string
	Barcode     string
	Quantity    int
	MinStock    int
	MaxStock    *int
	Cost        *float64
	Price       float64
	Category    string
	Image       string
	Notes       string
	ID          string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct validates raw input and builds a fully-formed Product
// aggregate. Validation is fail-fast; the declared order of the rules is
// part of the contract since it determines which error callers observe.
func NewProduct(in NewProductInput) (*Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewInvalidProductData("name cannot be empty")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, NewInvalidProductData("description cannot be empty")
	}
	if in.Sku != "" && strings.TrimSpace(in.Sku) == "" {
		return nil, NewInvalidProductData("sku cannot be empty")
	}
	if in.Barcode != "" && strings.TrimSpace(in.Barcode) == "" {
		return nil, NewInvalidProductData("barcode cannot be empty")
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, NewInvalidProductData("category cannot be empty")
	}

	if in.Price < 0 {
		return nil, NewInvalidPrice("price cannot be negative")
	}
	if in.Cost != nil && *in.Cost < 0 {
		return nil, NewInvalidPrice("cost cannot be negative")
	}
	if in.Cost != nil && in.Price < *in.Cost {
		return nil, NewInvalidPrice("price cannot be lower than cost")
	}

	if in.Quantity < 0 {
		return nil, NewInvalidStock("quantity cannot be negative")
	}
	if in.MinStock < 0 {
		return nil, NewInvalidStock("min stock cannot be negative")
	}
	if in.MaxStock != nil && *in.MaxStock < 0 {
		return nil, NewInvalidStock("max stock cannot be negative")
	}
	if in.MaxStock != nil && in.MinStock > *in.MaxStock {
		return nil, NewInvalidStock("min stock cannot be greater than max stock")
	}

	now := time.Now().UTC()

	p := &Product{
		ID:          in.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Sku:         strings.TrimSpace(in.Sku),
		Barcode:     strings.TrimSpace(in.Barcode),
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		MaxStock:    in.MaxStock,
		Cost:        in.Cost,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Image:       strings.TrimSpace(in.Image),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return p, nil
}

// ReconstituteProduct rebuilds a Product from a trusted persisted record,
// bypassing validation. Persistence adapters only.
func ReconstituteProduct(p Product) *Product {
	return &p
}
