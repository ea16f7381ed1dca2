package postgres

import (
	"context"

	"github.com/ani/point-check-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) *pointRepository {
	return &pointRepository{db: db}
}

func (r *pointRepository) Create(ctx context.Context, point *domain.Point) error {
	return r.db.WithContext(ctx).Create(point).Error
}

func (r *pointRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Point, error) {
	var points []*domain.Point
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}
