package middleware

import (
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "sessionId"

	// KeySession is the echo.Context key for the resolved session.
	KeySession = "session"

	// KeyCurrentUser is the echo.Context key for the session's owner.
	KeyCurrentUser = "currentUser"
)

// AuthMiddleware guards routes behind a valid session cookie.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate resolves the session cookie and stores the session and its
// owner on the request context. A missing cookie, a malformed token, and a
// token for a destroyed session all fail identically with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "session cookie is missing")
		}

		token, err := uuid.Parse(cookie.Value)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, "malformed session token")
		}

		session, err := m.sessionUC.Resolve(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(KeySession, session)
		c.Set(KeyCurrentUser, session.User)

		return next(c)
	}
}
