// Package redisstore provides a redis-backed token blacklist for
// deployments that prefer keeping revocations out of the relational store.
package redisstore

import (
	"context"
	"time"

	"github.com/ani/point-check-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "blacklist:"

func NewClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

type blacklistRepository struct {
	client *redis.Client
}

func NewBlacklistRepository(client *redis.Client) *blacklistRepository {
	return &blacklistRepository{client: client}
}

// Add stores the token without expiry; blacklist entries are never purged.
// Re-adding an already blacklisted token just rewrites the same entry.
func (r *blacklistRepository) Add(ctx context.Context, token *domain.BlacklistToken) error {
	return r.client.Set(ctx, blacklistKeyPrefix+token.Token, token.InvalidatedAt.Format(time.RFC3339), 0).Err()
}

func (r *blacklistRepository) Exists(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
