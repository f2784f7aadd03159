package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
)

func TestNewUser_NormalizesAndDefaults(t *testing.T) {
	before := time.Now().UTC()

	u, err := entity.NewUser(entity.NewUserInput{
		Name:     "  Ana  ",
		Email:    "ANA@Example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, "secret", u.Password)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.True(t, u.IsActive)

	_, parseErr := uuid.Parse(u.ID)
	assert.NoError(t, parseErr, "generated ID should be a uuid")
	assert.False(t, u.CreatedAt.Before(before))
	assert.False(t, u.UpdatedAt.Before(before))
}

func TestNewUser_ExplicitValuesKept(t *testing.T) {
	inactive := false
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	u, err := entity.NewUser(entity.NewUserInput{
		Name:      "Root",
		Email:     "root@example.com",
		Password:  "secret",
		ID:        "fixed-id",
		Role:      entity.RoleAdmin,
		IsActive:  &inactive,
		CreatedAt: created,
		UpdatedAt: created,
	})
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", u.ID)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.False(t, u.IsActive)
	assert.Equal(t, created, u.CreatedAt)
	assert.Equal(t, created, u.UpdatedAt)
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   entity.NewUserInput
		message string
	}{
		{
			name:    "empty name",
			input:   entity.NewUserInput{Name: "", Email: "a@b.com", Password: "secret"},
			message: "name cannot be empty",
		},
		{
			name:    "whitespace name",
			input:   entity.NewUserInput{Name: "   ", Email: "a@b.com", Password: "secret"},
			message: "name cannot be empty",
		},
		{
			name:    "email without at sign",
			input:   entity.NewUserInput{Name: "Ana", Email: "not-an-email", Password: "secret"},
			message: "invalid email format",
		},
		{
			name:    "empty email",
			input:   entity.NewUserInput{Name: "Ana", Email: "", Password: "secret"},
			message: "invalid email format",
		},
		{
			name:    "short password",
			input:   entity.NewUserInput{Name: "Ana", Email: "a@b.com", Password: "abcd"},
			message: "password must be at least 5 characters long",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := entity.NewUser(tt.input)
			require.Error(t, err)
			assert.Nil(t, u)
			assert.Equal(t, entity.KindInvalidUserData, entity.KindOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestReconstituteUser_BypassesValidation(t *testing.T) {
	// A record this malformed could never pass the factory; the trusted
	// path must take it as-is.
	record := entity.User{ID: "u-1", Name: "", Email: "broken", Password: "x", Role: "weird"}

	u := entity.ReconstituteUser(record)
	assert.Equal(t, record, *u)
}
