package entity

import (
	"time"
)

// Role represents the authorization role assigned to a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash once the user has gone through
// registration; the plaintext never reaches persistence.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
