// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"swipedeck/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single account by exact username match.
	// The lookup is always parameterized; usernames are never interpolated
	// into query text.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new account. The store's unique constraint on
	// username is the authoritative duplicate check; a violation surfaces
	// as domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
}
