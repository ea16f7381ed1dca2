package domain

import (
	"time"

	"github.com/google/uuid"
)

// Point is a single area-membership check result, owned by the user who
// submitted it.
type Point struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	X         float64   `json:"x" gorm:"not null"`
	Y         float64   `json:"y" gorm:"not null"`
	R         float64   `json:"r" gorm:"not null"`
	Hit       bool      `json:"hit" gorm:"not null"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}
