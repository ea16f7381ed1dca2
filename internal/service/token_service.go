package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ani/point-check-backend/internal/config"
	"github.com/ani/point-check-backend/internal/domain"
	"github.com/ani/point-check-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

// TokenService issues and validates session tokens and manages the
// revocation blacklist.
//
// Validate deliberately does not consult the blacklist: revocation is
// checked only where a call site wires IsBlacklisted in explicitly.
type TokenService struct {
	secret     []byte
	expiration time.Duration
	blacklist  repository.BlacklistRepository
}

func NewTokenService(cfg *config.Config, blacklist repository.BlacklistRepository) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.JWTSecret),
		expiration: time.Duration(cfg.JWTExpirationHours) * time.Hour,
		blacklist:  blacklist,
	}
}

// Issue creates a signed token for the user, valid for the configured
// expiration window.
func (s *TokenService) Issue(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    username,
		"userId": userID.String(),
		"iat":    now.Unix(),
		"exp":    now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate reports whether the token carries a valid signature and has not
// expired. Any parse, signature or expiry failure yields false.
func (s *TokenService) Validate(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	return err == nil && token.Valid
}

// Username decodes the subject claim without re-verifying the signature.
// The caller must have validated the token first.
func (s *TokenService) Username(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}
	return claims.GetSubject()
}

// IsBlacklisted reports whether the token has been revoked.
func (s *TokenService) IsBlacklisted(ctx context.Context, tokenString string) (bool, error) {
	return s.blacklist.Exists(ctx, tokenString)
}

// Revoke adds the token to the blacklist. Revoking the same token twice is
// a no-op.
func (s *TokenService) Revoke(ctx context.Context, tokenString string) error {
	return s.blacklist.Add(ctx, &domain.BlacklistToken{
		ID:            uuid.New(),
		Token:         tokenString,
		InvalidatedAt: time.Now(),
	})
}

// ExtractBearer strips the "Bearer " prefix from an Authorization header
// value. It returns the empty string when the header is absent or does not
// carry a bearer token.
func (s *TokenService) ExtractBearer(header string) string {
	if strings.HasPrefix(header, bearerPrefix) {
		return header[len(bearerPrefix):]
	}
	return ""
}
