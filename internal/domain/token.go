package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlacklistToken records a JWT that was invalidated on logout. Entries are
// never updated or purged; a token's presence alone marks it revoked.
type BlacklistToken struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Token         string    `json:"-" gorm:"uniqueIndex;not null"`
	InvalidatedAt time.Time `json:"invalidatedAt" gorm:"not null"`
}
