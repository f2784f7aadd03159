package entity

import (
	"time"
)

// Product is the aggregate root for the inventory domain.
// Optional string fields use the empty string as "not set"; optional
// numeric fields are pointers because zero is a legal stored value.
type Product struct {
	ID          string
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
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
