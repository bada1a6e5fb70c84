package usecase

import (
	"context"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the session created by a successful login. The
// session's ID is the opaque token the delivery layer hands to the client.
type LoginOutput struct {
	Session *entity.Session
	User    *entity.User
}

// SessionUsecase defines session lifecycle operations: the login that mints
// a session, the per-request resolution the auth gate performs, and the
// logout that destroys it.
type SessionUsecase interface {
	// Login verifies credentials and creates a session. A wrong password and
	// an unknown email both fail with the invalid-credentials variant.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Resolve redeems an opaque token for a session with its owner loaded.
	Resolve(ctx context.Context, token uuid.UUID) (*entity.Session, error)

	// Logout destroys a session. Destroying an already-destroyed session is
	// not an error.
	Logout(ctx context.Context, token uuid.UUID) error
}
