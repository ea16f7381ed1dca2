package repository

import (
	"context"

	"github.com/ani/point-check-backend/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type PointRepository interface {
	Create(ctx context.Context, point *domain.Point) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Point, error)
}

// BlacklistRepository is the persisted set of revoked token strings.
// Add must tolerate duplicates so that revocation stays idempotent.
type BlacklistRepository interface {
	Add(ctx context.Context, token *domain.BlacklistToken) error
	Exists(ctx context.Context, token string) (bool, error)
}

type Repositories struct {
	User      UserRepository
	Point     PointRepository
	Blacklist BlacklistRepository
}
