// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider this store supports.
const ProviderTypeEmail = "email"

// Authentication represents a single login credential. For email/password
// accounts the ProviderUserID is the email and PasswordHash holds the
// bcrypt digest.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this credential record.
	UserID         uuid.UUID // Links this credential to the User it belongs to.
	Provider       string    // The authentication provider, currently always "email".
	ProviderUserID string    // The user's unique ID at the provider (the email).
	PasswordHash   string    // The bcrypt-hashed password.
	CreatedAt      time.Time // Timestamp of when this credential was created.
}

// RefreshToken represents a long-lived, authorized user session. Only a
// SHA-256 hash of the raw token is ever stored.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token stops being accepted.
	CreatedAt time.Time // When this session was created (the login time).
}
