package api

import (
	"net/http"

	"github.com/ani/point-check-backend/internal/api/handlers"
	"github.com/ani/point-check-backend/internal/api/middleware"
	"github.com/ani/point-check-backend/internal/config"
	"github.com/ani/point-check-backend/internal/repository"
	"github.com/ani/point-check-backend/internal/service"
	"github.com/ani/point-check-backend/internal/stats"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, repos *repository.Repositories, broadcaster *stats.Broadcaster, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.AllowedOrigin))
	r.Use(middleware.Authenticate(services.Token, repos.User))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	pointHandler := handlers.NewPointHandler(services.Point)
	notificationHandler := handlers.NewNotificationHandler(broadcaster, services.Token)

	// Public routes
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Get("/main", authHandler.Main)
		r.Get("/api/logout", authHandler.Logout)
		r.Post("/api/check-point", pointHandler.CheckPoint)
		r.Get("/api/get-points", pointHandler.GetPoints)
		r.Get("/api/stats", pointHandler.Stats)
	})

	// WebSocket notification stream
	r.Get("/api/notifications", notificationHandler.Handle)

	return r
}
