package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUserInput carries raw registration data into the user factory.
// ID, Role, IsActive and the timestamps are optional; the factory fills
// defaults for whatever is missing.
type NewUserInput struct {
	Name      string
	Email     string
	Password  string
	ID        string
	Role      Role
	IsActive  *bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser validates raw input and builds a fully-formed User aggregate.
// It is pure: no I/O, no repository calls. Validation is fail-fast so the
// first violated rule determines the returned error.
func NewUser(in NewUserInput) (*User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewInvalidUserData("name cannot be empty")
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, NewInvalidUserData("invalid email format")
	}
	if len(in.Password) < 5 {
		return nil, NewInvalidUserData("password must be at least 5 characters long")
	}

	now := time.Now().UTC()

	u := &User{
		ID:        in.ID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  in.Password,
		Role:      in.Role,
		IsActive:  true,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
	return u, nil
}

// ReconstituteUser rebuilds a User from a trusted persisted record,
// bypassing validation entirely. Only persistence adapters may use it;
// it must never stand in for NewUser on the registration path.
func ReconstituteUser(u User) *User {
	return &u
}
