package impl

import (
	"context"
	"log/slog"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// movieService implements the MovieUsecase interface.
type movieService struct {
	txManager repository.TransactionManager
	movieRepo repository.MovieRepository
	logger    *slog.Logger
}

// MovieServiceParams holds dependencies for movieService, injected by Fx.
type MovieServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	MovieRepo repository.MovieRepository
	Logger    *slog.Logger
}

// NewMovieService is the constructor for movieService.
func NewMovieService(params MovieServiceParams) usecase.MovieUsecase {
	return &movieService{
		txManager: params.TxManager,
		movieRepo: params.MovieRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *movieService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves all movies.
func (srv *movieService) List(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := srv.movieRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	return movies, nil
}

// Get retrieves a single movie with its ratings collection materialized.
func (srv *movieService) Get(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, err := srv.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "movie not found")
		}

		return nil, errors.Wrap(err, "failed to find movie")
	}

	return movie, nil
}

// Create persists a new movie.
func (srv *movieService) Create(ctx context.Context, input *usecase.CreateMovieInput) (*entity.Movie, error) {
	srv.log(ctx).Info("Creating movie", slog.String("title", input.Title))

	movie := &entity.Movie{
		Title:    input.Title,
		Year:     input.Year,
		Director: input.Director,
		Duration: input.Duration,
		Genre:    input.Genre,
		Rating:   input.Rating,
	}

	if err := srv.movieRepo.Create(ctx, movie); err != nil {
		srv.log(ctx).Warn("Failed to create movie", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create movie")
	}

	srv.log(ctx).Debug("Movie created", slog.Any("movieID", movie.ID))

	return movie, nil
}

// Update applies a partial update through read-mutate-save.
func (srv *movieService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateMovieInput) (*entity.Movie, error) {
	srv.log(ctx).Debug("Updating movie", slog.Any("movieID", id))

	var updated *entity.Movie
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		movieRepo := repoFactory.MovieRepo()

		movie, err := movieRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "movie not found")
			}

			return errors.Wrap(err, "failed to load movie for update")
		}

		if input.Title != nil {
			movie.Title = *input.Title
		}
		if input.Year != nil {
			movie.Year = *input.Year
		}
		if input.Director != nil {
			movie.Director = *input.Director
		}
		if input.Duration != nil {
			movie.Duration = *input.Duration
		}
		if input.Genre != nil {
			movie.Genre = *input.Genre
		}
		if input.Rating != nil {
			movie.Rating = *input.Rating
		}

		if err := movieRepo.Update(ctx, movie); err != nil {
			return errors.Wrap(err, "failed to save movie")
		}
		updated = movie

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update movie", slog.Any("movieID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute movie update transaction")
	}

	return updated, nil
}

// Delete removes a movie. Existing ratings keep their rows and simply
// outlive it; nothing cascades.
func (srv *movieService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting movie", slog.Any("movieID", id))

	if err := srv.movieRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "movie not found")
		}

		return errors.Wrap(err, "failed to delete movie")
	}

	return nil
}
