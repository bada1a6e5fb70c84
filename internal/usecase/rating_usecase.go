package usecase

import (
	"context"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRatingInput defines the data required to create a rating.
// The referenced movie must exist at creation time.
type CreateRatingInput struct {
	MovieID uuid.UUID
	Review  string
	Score   int
}

// UpdateRatingInput carries a partial rating update. Nil fields are left untouched.
type UpdateRatingInput struct {
	Review *string
	Score  *int
}

// RatingUsecase defines the interface for rating-related business operations.
type RatingUsecase interface {
	List(ctx context.Context) ([]*entity.Rating, error)
	// Get returns the rating with its movie reference resolved.
	Get(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	// Create verifies the referenced movie exists before persisting; a
	// missing movie is a not-found failure, distinct from field validation.
	Create(ctx context.Context, input *CreateRatingInput) (*entity.Rating, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateRatingInput) (*entity.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
