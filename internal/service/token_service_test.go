package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/ani/point-check-backend/internal/config"
	"github.com/ani/point-check-backend/internal/domain"
	"github.com/ani/point-check-backend/internal/service"
	"github.com/ani/point-check-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryBlacklist is an in-memory BlacklistRepository for token tests.
type memoryBlacklist struct {
	mu     sync.Mutex
	tokens map[string]domain.BlacklistToken
}

func newMemoryBlacklist() *memoryBlacklist {
	return &memoryBlacklist{tokens: make(map[string]domain.BlacklistToken)}
}

func (m *memoryBlacklist) Add(ctx context.Context, token *domain.BlacklistToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[token.Token]; !ok {
		m.tokens[token.Token] = *token
	}
	return nil
}

func (m *memoryBlacklist) Exists(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tokens[token]
	return ok, nil
}

func newTokenService(cfg *config.Config) (*service.TokenService, *memoryBlacklist) {
	blacklist := newMemoryBlacklist()
	return service.NewTokenService(cfg, blacklist), blacklist
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	tokens, _ := newTokenService(testutil.TestConfig())

	token, err := tokens.Issue(uuid.New(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, tokens.Validate(token))

	username, err := tokens.Username(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestTokenService_ValidateFailures(t *testing.T) {
	tokens, _ := newTokenService(testutil.TestConfig())

	token, err := tokens.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		assert.False(t, tokens.Validate("not-a-token"))
	})

	t.Run("empty token", func(t *testing.T) {
		assert.False(t, tokens.Validate(""))
	})

	t.Run("tampered token", func(t *testing.T) {
		assert.False(t, tokens.Validate(token+"x"))
	})

	t.Run("wrong secret", func(t *testing.T) {
		cfg := testutil.TestConfig()
		cfg.JWTSecret = "some-other-secret"
		other, _ := newTokenService(cfg)
		assert.False(t, other.Validate(token))
	})

	t.Run("expired token", func(t *testing.T) {
		cfg := testutil.TestConfig()
		cfg.JWTExpirationHours = -1
		expiring, _ := newTokenService(cfg)

		expired, err := expiring.Issue(uuid.New(), "alice")
		require.NoError(t, err)
		assert.False(t, expiring.Validate(expired))
	})
}

func TestTokenService_RevokeAndBlacklist(t *testing.T) {
	tokens, _ := newTokenService(testutil.TestConfig())
	ctx := context.Background()

	token, err := tokens.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	blacklisted, err := tokens.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, tokens.Revoke(ctx, token))

	blacklisted, err = tokens.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// Revoking twice is a no-op.
	require.NoError(t, tokens.Revoke(ctx, token))

	// Validate does not consult the blacklist: a revoked but unexpired
	// token still validates.
	assert.True(t, tokens.Validate(token))
}

func TestTokenService_ExtractBearer(t *testing.T) {
	tokens, _ := newTokenService(testutil.TestConfig())

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", want: ""},
		{name: "missing prefix", header: "abc.def.ghi", want: ""},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "lowercase prefix", header: "bearer abc", want: ""},
		{name: "prefix only", header: "Bearer ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokens.ExtractBearer(tt.header))
		})
	}
}
