// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in and swipe. Usernames are stored exactly
// as submitted; the store enforces their uniqueness.
type User struct {
	ID           uuid.UUID // Generated at registration, immutable afterwards.
	Username     string    // Login identifier, unique across all accounts.
	PasswordHash string    // bcrypt digest. Never serialized into any response.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
