// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// The email arrives trimmed and format-validated; the birth date has already
// passed the adult check at the edge.
type RegisterUserInput struct {
	Email     string
	Password  string
	FullName  string
	Bio       string
	BirthDate time.Time
}

// UpdateUserInput carries a partial update. Nil fields are left untouched;
// a non-nil Password triggers digest re-derivation before persisting.
type UpdateUserInput struct {
	Email     *string
	Password  *string
	FullName  *string
	Bio       *string
	BirthDate *time.Time
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (API handlers) depends on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
