package impl

import (
	"context"
	"log/slog"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/domain/service"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and mints a session. Unknown email and wrong
// password both surface as invalid credentials so the two cases are
// indistinguishable to the caller.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check the password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordDigest) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	session := &entity.Session{UserID: user.ID}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session during login")
	}
	session.User = user

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID), slog.Any("sessionID", session.ID))

	return &usecase.LoginOutput{Session: session, User: user}, nil
}

// Resolve redeems an opaque token for a session with its owner eagerly
// loaded. Tokens referencing destroyed or never-existing sessions fail the
// same way.
func (srv *sessionService) Resolve(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	session, err := srv.sessionRepo.FindByID(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "session not found")
		}

		return nil, errors.Wrap(err, "failed to resolve session")
	}

	return session, nil
}

// Logout destroys a session. Destroying a session that no longer exists is
// treated as success: the desired end state already holds.
func (srv *sessionService) Logout(ctx context.Context, token uuid.UUID) error {
	srv.log(ctx).Info("Logging out", slog.Any("sessionID", token))

	if err := srv.sessionRepo.Delete(ctx, token); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Debug("Logout for already-destroyed session", slog.Any("sessionID", token))

			return nil
		}

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
