package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session matches the presented token.
// Tokens referencing deleted and never-existing sessions are indistinguishable.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence operations for authentication sessions.
type SessionRepository interface {
	// Create persists a new session for the given user. Sessions carry no
	// uniqueness constraint; a user may hold many concurrently.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID looks a session up by its opaque token and eagerly resolves
	// the owning user, so downstream callers need no second lookup.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Delete removes a session by its token. Removing an absent token
	// reports ErrSessionNotFound; the caller decides whether that matters.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes every session owned by the given user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
