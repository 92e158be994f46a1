package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

// Profile is the application-side view of an account. Its Id is shared with AuthUser.
type Profile struct {
	Id        uuid.UUID
	FullName  string
	Username  *string
	Role      UserRole
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthUser holds credentials only.
type AuthUser struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
