package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cinelog/internal/delivery/http/response"
	"cinelog/internal/domain/entity"
	"cinelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createMovieRequest is the payload for movie creation. Title, year, and
// director are required; the rest is optional descriptive data.
type createMovieRequest struct {
	Title    string  `json:"title" validate:"required"`
	Year     int     `json:"year" validate:"required,gte=1888"`
	Director string  `json:"director" validate:"required"`
	Duration int     `json:"duration" validate:"omitempty,gte=1"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
}

// updateMovieRequest is the payload for a partial movie update.
type updateMovieRequest struct {
	Title    *string  `json:"title" validate:"omitempty,min=1"`
	Year     *int     `json:"year" validate:"omitempty,gte=1888"`
	Director *string  `json:"director" validate:"omitempty,min=1"`
	Duration *int     `json:"duration" validate:"omitempty,gte=1"`
	Genre    *string  `json:"genre"`
	Rating   *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
}

// movieResponse is the external representation of a movie.
type movieResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Director  string    `json:"director"`
	Duration  int       `json:"duration,omitempty"`
	Genre     string    `json:"genre,omitempty"`
	Rating    float64   `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// movieDetailResponse additionally carries the ratings collection. The
// collection is always present in the detail view, empty when no ratings
// exist.
type movieDetailResponse struct {
	movieResponse
	Ratings []*ratingResponse `json:"ratings"`
}

func toMovieResponse(movie *entity.Movie) *movieResponse {
	return &movieResponse{
		ID:        movie.ID.String(),
		Title:     movie.Title,
		Year:      movie.Year,
		Director:  movie.Director,
		Duration:  movie.Duration,
		Genre:     movie.Genre,
		Rating:    movie.Rating,
		CreatedAt: movie.CreatedAt,
		UpdatedAt: movie.UpdatedAt,
	}
}

func toMovieDetailResponse(movie *entity.Movie) *movieDetailResponse {
	ratings := make([]*ratingResponse, 0, len(movie.Ratings))
	for _, rating := range movie.Ratings {
		ratings = append(ratings, toRatingResponse(rating))
	}

	return &movieDetailResponse{
		movieResponse: *toMovieResponse(movie),
		Ratings:       ratings,
	}
}

// MovieHandler holds dependencies for movie-related handlers.
type MovieHandler struct {
	movieUC usecase.MovieUsecase
	logger  *slog.Logger
}

// NewMovieHandler is the constructor for MovieHandler, injected by Fx.
func NewMovieHandler(movieUC usecase.MovieUsecase, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{
		movieUC: movieUC,
		logger:  logger,
	}
}

// List returns all movies.
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.movieUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*movieResponse, 0, len(movies))
	for _, movie := range movies {
		out = append(out, toMovieResponse(movie))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get returns a single movie with its ratings collection.
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	movie, err := h.movieUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMovieDetailResponse(movie), "")
}

// Create persists a new movie.
func (h *MovieHandler) Create(c echo.Context) error {
	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid movie input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	movie, err := h.movieUC.Create(c.Request().Context(), &usecase.CreateMovieInput{
		Title:    req.Title,
		Year:     req.Year,
		Director: req.Director,
		Duration: req.Duration,
		Genre:    req.Genre,
		Rating:   req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMovieResponse(movie), "Movie created successfully")
}

// Update applies a partial update to a movie.
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateMovieRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid movie update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	movie, err := h.movieUC.Update(c.Request().Context(), id, &usecase.UpdateMovieInput{
		Title:    req.Title,
		Year:     req.Year,
		Director: req.Director,
		Duration: req.Duration,
		Genre:    req.Genre,
		Rating:   req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMovieResponse(movie), "Movie updated successfully")
}

// Delete removes a movie.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.movieUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
