package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMovieNotFound is a domain-specific error returned when a movie is not found.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepository defines the standard operations for movie persistence.
type MovieRepository interface {
	// FindAll retrieves every movie, without their ratings.
	FindAll(ctx context.Context) ([]*entity.Movie, error)

	// FindByID retrieves a single movie with its ratings eagerly loaded.
	// The ratings collection is always materialized, empty when none exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)

	// Exists reports whether a movie with the given ID is persisted.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create persists a new movie entity to the storage.
	Create(ctx context.Context, movie *entity.Movie) error

	// Update saves the full state of an existing movie entity.
	Update(ctx context.Context, movie *entity.Movie) error

	// Delete removes a movie by ID. Deleting an absent ID reports ErrMovieNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
