// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindAll retrieves every user. The API exposes no filtering.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	// The store's unique index on email is the sole arbiter of duplicates.
	Create(ctx context.Context, user *entity.User) error

	// Update saves the full state of an existing user entity.
	// Partial updates flow through read-mutate-save, never update-in-place,
	// so the caller controls digest re-derivation.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID. Deleting an absent ID reports ErrUserNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
