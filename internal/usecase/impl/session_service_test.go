package impl

import (
	"context"
	"testing"

	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionServiceForTest(env *testEnv) usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		UserRepo:    env.users,
		SessionRepo: env.sessions,
		Hasher:      env.hasher,
		Logger:      discardLogger(),
	})
}

func TestSessionService_Login_Success(t *testing.T) {
	env := newTestEnv()
	userSvc := newUserServiceForTest(env)
	sessionSvc := newSessionServiceForTest(env)

	registerTestUser(t, userSvc, "alice@example.com")

	output, err := sessionSvc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, output.Session.ID)
	assert.Equal(t, output.User.ID, output.Session.UserID)
	assert.Equal(t, "alice@example.com", output.User.Email)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	env := newTestEnv()
	sessionSvc := newSessionServiceForTest(env)

	_, err := sessionSvc.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	env := newTestEnv()
	userSvc := newUserServiceForTest(env)
	sessionSvc := newSessionServiceForTest(env)

	registerTestUser(t, userSvc, "alice@example.com")

	_, err := sessionSvc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Resolve_LoadsOwner(t *testing.T) {
	env := newTestEnv()
	userSvc := newUserServiceForTest(env)
	sessionSvc := newSessionServiceForTest(env)

	registerTestUser(t, userSvc, "alice@example.com")

	login, err := sessionSvc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	session, err := sessionSvc.Resolve(context.Background(), login.Session.ID)
	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Equal(t, "alice@example.com", session.User.Email)
}

func TestSessionService_Resolve_UnknownToken(t *testing.T) {
	env := newTestEnv()
	sessionSvc := newSessionServiceForTest(env)

	_, err := sessionSvc.Resolve(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestSessionService_Logout_DestroysSession(t *testing.T) {
	env := newTestEnv()
	userSvc := newUserServiceForTest(env)
	sessionSvc := newSessionServiceForTest(env)

	registerTestUser(t, userSvc, "alice@example.com")

	login, err := sessionSvc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	require.NoError(t, sessionSvc.Logout(context.Background(), login.Session.ID))

	_, err = sessionSvc.Resolve(context.Background(), login.Session.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	// Logging out again is not an error: the end state already holds.
	assert.NoError(t, sessionSvc.Logout(context.Background(), login.Session.ID))
}
