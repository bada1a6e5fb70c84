package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	deliverymiddleware "cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/validator"
	"cinelog/internal/domain/entity"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Function-field fakes for the usecase interfaces. Tests set only the
// methods a handler is expected to reach.

type fakeUserUsecase struct {
	registerFn func(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error)
	listFn     func(ctx context.Context) ([]*entity.User, error)
	getFn      func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	updateFn   func(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeUserUsecase) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeUserUsecase) List(ctx context.Context) ([]*entity.User, error) {
	return f.listFn(ctx)
}

func (f *fakeUserUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.getFn(ctx, id)
}

func (f *fakeUserUsecase) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeUserUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

type fakeSessionUsecase struct {
	loginFn   func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	resolveFn func(ctx context.Context, token uuid.UUID) (*entity.Session, error)
	logoutFn  func(ctx context.Context, token uuid.UUID) error
}

func (f *fakeSessionUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.loginFn(ctx, input)
}

func (f *fakeSessionUsecase) Resolve(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	return f.resolveFn(ctx, token)
}

func (f *fakeSessionUsecase) Logout(ctx context.Context, token uuid.UUID) error {
	return f.logoutFn(ctx, token)
}

type fakeMovieUsecase struct {
	listFn   func(ctx context.Context) ([]*entity.Movie, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	createFn func(ctx context.Context, input *usecase.CreateMovieInput) (*entity.Movie, error)
	updateFn func(ctx context.Context, id uuid.UUID, input *usecase.UpdateMovieInput) (*entity.Movie, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeMovieUsecase) List(ctx context.Context) ([]*entity.Movie, error) {
	return f.listFn(ctx)
}

func (f *fakeMovieUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return f.getFn(ctx, id)
}

func (f *fakeMovieUsecase) Create(ctx context.Context, input *usecase.CreateMovieInput) (*entity.Movie, error) {
	return f.createFn(ctx, input)
}

func (f *fakeMovieUsecase) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateMovieInput) (*entity.Movie, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeMovieUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

type fakeRatingUsecase struct {
	listFn   func(ctx context.Context) ([]*entity.Rating, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	createFn func(ctx context.Context, input *usecase.CreateRatingInput) (*entity.Rating, error)
	updateFn func(ctx context.Context, id uuid.UUID, input *usecase.UpdateRatingInput) (*entity.Rating, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeRatingUsecase) List(ctx context.Context) ([]*entity.Rating, error) {
	return f.listFn(ctx)
}

func (f *fakeRatingUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	return f.getFn(ctx, id)
}

func (f *fakeRatingUsecase) Create(ctx context.Context, input *usecase.CreateRatingInput) (*entity.Rating, error) {
	return f.createFn(ctx, input)
}

func (f *fakeRatingUsecase) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateRatingInput) (*entity.Rating, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeRatingUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho wires the same validator and error handler the real server
// uses, so handler tests observe the final HTTP status and body.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

var errNotReached = errors.New("usecase should not be reached")

// sessionInjector stands in for the auth middleware in handler tests.
func sessionInjector(session *entity.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(deliverymiddleware.KeySession, session)
			c.Set(deliverymiddleware.KeyCurrentUser, session.User)

			return next(c)
		}
	}
}
