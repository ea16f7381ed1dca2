package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser Role = "USER"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'USER'"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Role == role
}
