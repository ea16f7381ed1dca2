package postgres

import (
	"context"

	"github.com/ani/point-check-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type blacklistRepository struct {
	db *gorm.DB
}

func NewBlacklistRepository(db *gorm.DB) *blacklistRepository {
	return &blacklistRepository{db: db}
}

// Add inserts the token into the blacklist. Re-adding an already
// blacklisted token is a no-op.
func (r *blacklistRepository) Add(ctx context.Context, token *domain.BlacklistToken) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoNothing: true,
	}).Create(token).Error
}

func (r *blacklistRepository) Exists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.BlacklistToken{}).Where("token = ?", token).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
