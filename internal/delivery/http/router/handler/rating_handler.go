package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cinelog/internal/delivery/http/response"
	"cinelog/internal/domain/entity"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createRatingRequest is the payload for rating creation. The movie
// reference must be a well-formed identifier; whether it names an existing
// movie is checked against the store, not here.
type createRatingRequest struct {
	MovieID string `json:"movieId" validate:"required,uuid"`
	Review  string `json:"review" validate:"required,min=4"`
	Score   int    `json:"score" validate:"required,gte=1,lte=5"`
}

// updateRatingRequest is the payload for a partial rating update.
type updateRatingRequest struct {
	Review *string `json:"review" validate:"omitempty,min=4"`
	Score  *int    `json:"score" validate:"omitempty,gte=1,lte=5"`
}

// ratingResponse is the external representation of a rating. The movie field
// is present when the reference has been resolved.
type ratingResponse struct {
	ID        string         `json:"id"`
	MovieID   string         `json:"movieId"`
	Movie     *movieResponse `json:"movie,omitempty"`
	Review    string         `json:"review"`
	Score     int            `json:"score"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func toRatingResponse(rating *entity.Rating) *ratingResponse {
	out := &ratingResponse{
		ID:        rating.ID.String(),
		MovieID:   rating.MovieID.String(),
		Review:    rating.Review,
		Score:     rating.Score,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
	if rating.Movie != nil {
		out.Movie = toMovieResponse(rating.Movie)
	}

	return out
}

// RatingHandler holds dependencies for rating-related handlers.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(ratingUC usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		ratingUC: ratingUC,
		logger:   logger,
	}
}

// List returns all ratings.
func (h *RatingHandler) List(c echo.Context) error {
	ratings, err := h.ratingUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*ratingResponse, 0, len(ratings))
	for _, rating := range ratings {
		out = append(out, toRatingResponse(rating))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get returns a single rating with its movie reference resolved.
func (h *RatingHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	rating, err := h.ratingUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRatingResponse(rating), "")
}

// Create persists a new rating against an existing movie.
func (h *RatingHandler) Create(c echo.Context) error {
	var req createRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	// The uuid rule already passed; parse cannot fail here.
	movieID, _ := uuid.Parse(req.MovieID)

	rating, err := h.ratingUC.Create(c.Request().Context(), &usecase.CreateRatingInput{
		MovieID: movieID,
		Review:  req.Review,
		Score:   req.Score,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRatingResponse(rating), "Rating created successfully")
}

// Update applies a partial update to a rating.
func (h *RatingHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	rating, err := h.ratingUC.Update(c.Request().Context(), id, &usecase.UpdateRatingInput{
		Review: req.Review,
		Score:  req.Score,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRatingResponse(rating), "Rating updated successfully")
}

// Delete removes a rating.
func (h *RatingHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.ratingUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
