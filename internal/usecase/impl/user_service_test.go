package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserServiceForTest(env *testEnv) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager: env.tx,
		UserRepo:  env.users,
		Hasher:    env.hasher,
		Logger:    discardLogger(),
	})
}

func registerTestUser(t *testing.T, svc usecase.UserUsecase, email string) *usecase.RegisterOutput {
	t.Helper()

	output, err := svc.Register(context.Background(), &usecase.RegisterUserInput{
		Email:     email,
		Password:  "correct horse battery staple",
		FullName:  "Test User",
		BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, output.User)

	return output
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	env := newTestEnv()
	svc := newUserServiceForTest(env)

	output := registerTestUser(t, svc, "alice@example.com")

	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.NotEqual(t, "correct horse battery staple", output.User.PasswordDigest)
	assert.True(t, env.hasher.Check("correct horse battery staple", output.User.PasswordDigest))
}

func TestUserService_Get_UnknownID(t *testing.T) {
	env := newTestEnv()
	svc := newUserServiceForTest(env)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestUserService_Update_PasswordChangeRederivesDigest(t *testing.T) {
	env := newTestEnv()
	svc := newUserServiceForTest(env)

	output := registerTestUser(t, svc, "alice@example.com")
	originalDigest := output.User.PasswordDigest

	newPassword := "an entirely new secret"
	updated, err := svc.Update(context.Background(), output.User.ID, &usecase.UpdateUserInput{
		Password: &newPassword,
	})
	require.NoError(t, err)

	assert.NotEqual(t, originalDigest, updated.PasswordDigest)
	assert.True(t, env.hasher.Check(newPassword, updated.PasswordDigest))
	assert.False(t, env.hasher.Check("correct horse battery staple", updated.PasswordDigest))
}

func TestUserService_Update_UnrelatedFieldKeepsDigest(t *testing.T) {
	env := newTestEnv()
	svc := newUserServiceForTest(env)

	output := registerTestUser(t, svc, "alice@example.com")
	originalDigest := output.User.PasswordDigest

	newBio := "Enjoys long walks through film archives."
	updated, err := svc.Update(context.Background(), output.User.ID, &usecase.UpdateUserInput{
		Bio: &newBio,
	})
	require.NoError(t, err)

	assert.Equal(t, newBio, updated.Bio)
	assert.Equal(t, originalDigest, updated.PasswordDigest)
	assert.True(t, env.hasher.Check("correct horse battery staple", updated.PasswordDigest))
}

func TestUserService_Update_UnknownID(t *testing.T) {
	env := newTestEnv()
	svc := newUserServiceForTest(env)

	newBio := "ghost"
	_, err := svc.Update(context.Background(), uuid.New(), &usecase.UpdateUserInput{Bio: &newBio})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestUserService_Delete_RemovesSessions(t *testing.T) {
	env := newTestEnv()
	userSvc := newUserServiceForTest(env)
	sessionSvc := newSessionServiceForTest(env)

	output := registerTestUser(t, userSvc, "alice@example.com")

	login, err := sessionSvc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	// The fake user repo rejects deletion while session rows still reference
	// the user, so this only succeeds when sessions are removed first.
	require.NoError(t, userSvc.Delete(context.Background(), output.User.ID))

	_, err = sessionSvc.Resolve(context.Background(), login.Session.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestUserService_Delete_UnknownID(t *testing.T) {
	env := newTestEnv()
	svc := newUserServiceForTest(env)

	err := svc.Delete(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
