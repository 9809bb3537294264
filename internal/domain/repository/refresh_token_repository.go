package repository

import (
	"context"
	"errors"

	"kusina/internal/domain/entity"
)

// Refresh token lookup errors.
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)

// RefreshTokenRepository defines operations for session persistence. Raw
// tokens never reach this layer; all lookups are by SHA-256 hash.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash removes a session, invalidating the token.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error
}
