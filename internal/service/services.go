package service

import (
	"github.com/ani/point-check-backend/internal/config"
	"github.com/ani/point-check-backend/internal/geometry"
	"github.com/ani/point-check-backend/internal/repository"
	"github.com/ani/point-check-backend/internal/stats"
)

type Services struct {
	Token *TokenService
	Auth  *AuthService
	Point *PointService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, counter *stats.Counter, polygon *geometry.PolygonTracker) *Services {
	tokens := NewTokenService(cfg, repos.Blacklist)
	return &Services{
		Token: tokens,
		Auth:  NewAuthService(repos.User, tokens),
		Point: NewPointService(repos.Point, counter, polygon),
	}
}
