package entity_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func validProduct() entity.NewProductInput {
	return entity.NewProductInput{
		Name:        "Shirt",
		Description: "Plain cotton shirt",
		Sku:         " SHIRT-001 ",
		Quantity:    5,
		MinStock:    1,
		Price:       20,
		Category:    "clothing",
	}
}

func TestNewProduct_Valid(t *testing.T) {
	p, err := entity.NewProduct(validProduct())
	require.NoError(t, err)

	assert.Equal(t, "Shirt", p.Name)
	assert.Equal(t, "SHIRT-001", p.Sku, "sku should be trimmed")
	assert.Equal(t, "clothing", p.Category)
	_, parseErr := uuid.Parse(p.ID)
	assert.NoError(t, parseErr)
	assert.False(t, p.CreatedAt.IsZero())
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestNewProduct_OptionalFieldsAbsent(t *testing.T) {
	in := validProduct()
	in.Sku = ""
	in.Barcode = ""

	p, err := entity.NewProduct(in)
	require.NoError(t, err)
	assert.Empty(t, p.Sku)
	assert.Empty(t, p.Barcode)
	assert.Nil(t, p.MaxStock)
	assert.Nil(t, p.Cost)
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.NewProductInput)
		kind    entity.ErrorKind
		message string
	}{
		{
			name:    "empty name",
			mutate:  func(in *entity.NewProductInput) { in.Name = "  " },
			kind:    entity.KindInvalidProductData,
			message: "name cannot be empty",
		},
		{
			name:    "empty description",
			mutate:  func(in *entity.NewProductInput) { in.Description = "" },
			kind:    entity.KindInvalidProductData,
			message: "description cannot be empty",
		},
		{
			name:    "whitespace sku",
			mutate:  func(in *entity.NewProductInput) { in.Sku = "   " },
			kind:    entity.KindInvalidProductData,
			message: "sku cannot be empty",
		},
		{
			name:    "whitespace barcode",
			mutate:  func(in *entity.NewProductInput) { in.Barcode = " " },
			kind:    entity.KindInvalidProductData,
			message: "barcode cannot be empty",
		},
		{
			name:    "empty category",
			mutate:  func(in *entity.NewProductInput) { in.Category = "" },
			kind:    entity.KindInvalidProductData,
			message: "category cannot be empty",
		},
		{
			name:    "negative price",
			mutate:  func(in *entity.NewProductInput) { in.Price = -1 },
			kind:    entity.KindInvalidPrice,
			message: "price cannot be negative",
		},
		{
			name:    "negative cost",
			mutate:  func(in *entity.NewProductInput) { in.Cost = floatPtr(-0.5) },
			kind:    entity.KindInvalidPrice,
			message: "cost cannot be negative",
		},
		{
			name:    "price below cost",
			mutate:  func(in *entity.NewProductInput) { in.Price = 5; in.Cost = floatPtr(10) },
			kind:    entity.KindInvalidPrice,
			message: "price cannot be lower than cost",
		},
		{
			name:    "negative quantity",
			mutate:  func(in *entity.NewProductInput) { in.Quantity = -1 },
			kind:    entity.KindInvalidStock,
			message: "quantity cannot be negative",
		},
		{
			name:    "negative min stock",
			mutate:  func(in *entity.NewProductInput) { in.MinStock = -1 },
			kind:    entity.KindInvalidStock,
			message: "min stock cannot be negative",
		},
		{
			name:    "negative max stock",
			mutate:  func(in *entity.NewProductInput) { in.MaxStock = intPtr(-3) },
			kind:    entity.KindInvalidStock,
			message: "max stock cannot be negative",
		},
		{
			name:    "min stock above max stock",
			mutate:  func(in *entity.NewProductInput) { in.MinStock = 10; in.MaxStock = intPtr(5) },
			kind:    entity.KindInvalidStock,
			message: "min stock cannot be greater than max stock",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProduct()
			tt.mutate(&in)

			p, err := entity.NewProduct(in)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.Equal(t, tt.kind, entity.KindOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNewProduct_TextFieldsCheckedBeforeNumbers(t *testing.T) {
	// Fail-fast order: with both an empty name and a negative price, the
	// name violation wins.
	in := validProduct()
	in.Name = ""
	in.Price = -1

	_, err := entity.NewProduct(in)
	require.Error(t, err)
	assert.Equal(t, entity.KindInvalidProductData, entity.KindOf(err))
}

func TestNewProduct_ErrorsMatchWithErrorsIs(t *testing.T) {
	in := validProduct()
	in.MinStock = 10
	in.MaxStock = intPtr(5)

	_, err := entity.NewProduct(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &entity.DomainError{Kind: entity.KindInvalidStock}))
	assert.False(t, errors.Is(err, &entity.DomainError{Kind: entity.KindInvalidPrice}))
}

func TestReconstituteProduct_BypassesValidation(t *testing.T) {
	record := entity.Product{ID: "p-1", Name: "", Price: -99, Category: ""}

	p := entity.ReconstituteProduct(record)
	assert.Equal(t, record, *p)
}
