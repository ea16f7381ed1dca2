package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ani/point-check-backend/internal/api"
	"github.com/ani/point-check-backend/internal/config"
	"github.com/ani/point-check-backend/internal/geometry"
	"github.com/ani/point-check-backend/internal/repository/postgres"
	"github.com/ani/point-check-backend/internal/repository/redisstore"
	"github.com/ani/point-check-backend/internal/service"
	"github.com/ani/point-check-backend/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Optional redis-backed blacklist
	if cfg.RedisAddr != "" {
		rdb, err := redisstore.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		repos.Blacklist = redisstore.NewBlacklistRepository(rdb)
		log.Println("Using redis token blacklist")
	}

	// Initialize counters and notification broadcaster
	broadcaster := stats.NewBroadcaster()
	counter := stats.NewCounter(broadcaster)
	polygon := geometry.NewPolygonTracker()

	// Initialize services
	services := service.NewServices(repos, cfg, counter, polygon)

	// Initialize router
	router := api.NewRouter(services, repos, broadcaster, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
