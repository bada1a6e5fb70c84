package usecase

import (
	"context"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMovieInput defines the data required to create a movie.
type CreateMovieInput struct {
	Title    string
	Year     int
	Director string
	Duration int
	Genre    string
	Rating   float64
}

// UpdateMovieInput carries a partial movie update. Nil fields are left untouched.
type UpdateMovieInput struct {
	Title    *string
	Year     *int
	Director *string
	Duration *int
	Genre    *string
	Rating   *float64
}

// MovieUsecase defines the interface for movie-related business operations.
type MovieUsecase interface {
	List(ctx context.Context) ([]*entity.Movie, error)
	// Get returns the movie with its ratings collection materialized,
	// empty when no ratings exist.
	Get(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Create(ctx context.Context, input *CreateMovieInput) (*entity.Movie, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateMovieInput) (*entity.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
