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

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves all ratings.
func (srv *ratingService) List(ctx context.Context) ([]*entity.Rating, error) {
	ratings, err := srv.ratingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}

// Get retrieves a single rating with its movie reference resolved.
func (srv *ratingService) Get(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	rating, err := srv.ratingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "rating not found")
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return rating, nil
}

// Create persists a new rating after confirming the referenced movie exists.
// Both checks run in one transaction so the movie cannot disappear between
// the existence check and the insert.
func (srv *ratingService) Create(ctx context.Context, input *usecase.CreateRatingInput) (*entity.Rating, error) {
	srv.log(ctx).Info("Creating rating", slog.Any("movieID", input.MovieID))

	rating := &entity.Rating{
		MovieID: input.MovieID,
		Review:  input.Review,
		Score:   input.Score,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exists, err := repoFactory.MovieRepo().Exists(ctx, input.MovieID)
		if err != nil {
			return errors.Wrap(err, "failed to check movie existence")
		}
		if !exists {
			return errors.Wrap(domainerrors.ErrNotFound, "movie not found")
		}

		if err := repoFactory.RatingRepo().Create(ctx, rating); err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "movie not found")
			}

			return errors.Wrap(err, "failed to create rating")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create rating", slog.Any("movieID", input.MovieID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute rating create transaction")
	}

	srv.log(ctx).Debug("Rating created", slog.Any("ratingID", rating.ID))

	return rating, nil
}

// Update applies a partial update through read-mutate-save.
func (srv *ratingService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateRatingInput) (*entity.Rating, error) {
	srv.log(ctx).Debug("Updating rating", slog.Any("ratingID", id))

	var updated *entity.Rating
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.RatingRepo()

		rating, err := ratingRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRatingNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "rating not found")
			}

			return errors.Wrap(err, "failed to load rating for update")
		}

		if input.Review != nil {
			rating.Review = *input.Review
		}
		if input.Score != nil {
			rating.Score = *input.Score
		}

		if err := ratingRepo.Update(ctx, rating); err != nil {
			return errors.Wrap(err, "failed to save rating")
		}
		updated = rating

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update rating", slog.Any("ratingID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute rating update transaction")
	}

	return updated, nil
}

// Delete removes a rating.
func (srv *ratingService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting rating", slog.Any("ratingID", id))

	if err := srv.ratingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "rating not found")
		}

		return errors.Wrap(err, "failed to delete rating")
	}

	return nil
}
