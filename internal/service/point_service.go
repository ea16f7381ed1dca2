package service

import (
	"context"

	"github.com/ani/point-check-backend/internal/domain"
	"github.com/ani/point-check-backend/internal/geometry"
	"github.com/ani/point-check-backend/internal/repository"
	"github.com/ani/point-check-backend/internal/stats"
	"github.com/google/uuid"
)

type PointService struct {
	pointRepo repository.PointRepository
	counter   *stats.Counter
	polygon   *geometry.PolygonTracker
}

func NewPointService(pointRepo repository.PointRepository, counter *stats.Counter, polygon *geometry.PolygonTracker) *PointService {
	return &PointService{
		pointRepo: pointRepo,
		counter:   counter,
		polygon:   polygon,
	}
}

// Check evaluates the point against the target region, persists the result
// for the user, and updates the process-wide counters and polygon tracker.
func (s *PointService) Check(ctx context.Context, user *domain.User, x, y, r float64) (*domain.Point, error) {
	point := &domain.Point{
		ID:     uuid.New(),
		X:      x,
		Y:      y,
		R:      r,
		Hit:    geometry.InArea(x, y, r),
		UserID: user.ID,
	}

	if err := s.pointRepo.Create(ctx, point); err != nil {
		return nil, err
	}

	s.counter.Record(point)
	s.polygon.Add(point.X, point.Y)

	return point, nil
}

// History returns all points previously checked by the user.
func (s *PointService) History(ctx context.Context, userID uuid.UUID) ([]*domain.Point, error) {
	return s.pointRepo.GetByUserID(ctx, userID)
}

// Stats is a snapshot of the process-wide counters and polygon tracker.
type Stats struct {
	TotalPoints     int     `json:"totalPoints"`
	InvalidPoints   int     `json:"invalidPoints"`
	NotInAreaPoints int     `json:"notInAreaPoints"`
	PolygonArea     float64 `json:"polygonArea"`
	PolygonPoints   int     `json:"polygonPoints"`
}

func (s *PointService) Stats() Stats {
	return Stats{
		TotalPoints:     s.counter.TotalPoints(),
		InvalidPoints:   s.counter.InvalidPoints(),
		NotInAreaPoints: s.counter.NotInAreaPoints(),
		PolygonArea:     s.polygon.Area(),
		PolygonPoints:   s.polygon.Count(),
	}
}
