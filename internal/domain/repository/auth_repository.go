package repository

import (
	"context"
	"errors"

	"kusina/internal/domain/entity"
)

// ErrAuthNotFound is returned when no credential matches the lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines operations for login credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and the user's
	// ID at that provider (the email for email/password accounts).
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
