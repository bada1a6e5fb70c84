package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRatingNotFound is a domain-specific error returned when a rating is not found.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines the standard operations for rating persistence.
type RatingRepository interface {
	// FindAll retrieves every rating, without resolving movie references.
	FindAll(ctx context.Context) ([]*entity.Rating, error)

	// FindByID retrieves a single rating with its movie reference resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)

	// Create persists a new rating entity to the storage. The caller is
	// responsible for verifying the referenced movie exists beforehand.
	Create(ctx context.Context, rating *entity.Rating) error

	// Update saves the full state of an existing rating entity.
	Update(ctx context.Context, rating *entity.Rating) error

	// Delete removes a rating by ID. Deleting an absent ID reports ErrRatingNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
