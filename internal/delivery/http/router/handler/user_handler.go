// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cinelog/config"
	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/response"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerUserRequest is the payload for user registration.
type registerUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FullName  string `json:"fullName" validate:"required"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02,adult"`
}

// updateUserRequest is the payload for a partial user update. Absent fields
// are left untouched.
type updateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	FullName  *string `json:"fullName" validate:"omitempty,min=1"`
	Bio       *string `json:"bio"`
	BirthDate *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02,adult"`
}

// loginRequest is the payload for credential login.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the external representation of a user. The password digest
// has no field here and can never be serialized.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Bio       string    `json:"bio,omitempty"`
	BirthDate string    `json:"birthDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName,
		Bio:       user.Bio,
		BirthDate: user.BirthDate.Format(time.DateOnly),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// parseID reads the :id path parameter. An unparseable identifier cannot
// name any stored entity, so it reports not-found rather than bad-request.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrNotFound, "malformed identifier")
	}

	return id, nil
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC    usecase.UserUsecase
	sessionUC usecase.SessionUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, sessionUC usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC:    userUC,
		sessionUC: sessionUC,
		cfg:       cfg,
		logger:    logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	// Email is stored trimmed; padded input must validate against the
	// trimmed form.
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	// The date format is already validated; parse cannot fail here.
	birthDate, _ := time.Parse(time.DateOnly, req.BirthDate)

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		Bio:       req.Bio,
		BirthDate: birthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the credential login request and issues the session cookie.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	// Stored emails are trimmed; match padded input against them.
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    output.Session.ID.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, toUserResponse(output.User), "Login successful")
}

// Logout destroys the current session and expires the cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	session, ok := c.Get(middleware.KeySession).(*entity.Session)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no session on request")
	}

	if err := h.sessionUC.Logout(c.Request().Context(), session.ID); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	return response.NoContent(c)
}

// Profile returns the identity owning the current session.
func (h *UserHandler) Profile(c echo.Context) error {
	user, ok := c.Get(middleware.KeyCurrentUser).(*entity.User)
	if !ok || user == nil {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no user on request")
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// List returns all users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get returns a single user by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// Update applies a partial update to a user.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Bio:      req.Bio,
	}
	if req.BirthDate != nil {
		birthDate, _ := time.Parse(time.DateOnly, *req.BirthDate)
		input.BirthDate = &birthDate
	}

	user, err := h.userUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated successfully")
}

// Delete removes a user.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
