// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. The email is the login
// identifier and is unique across all accounts.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's email address, used as the login identifier.
	Name      string    // The user's display name.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
