package postgres

import (
	"context"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// movieRepository implements the repository.MovieRepository interface using GORM.
type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository is the constructor for movieRepository.
func NewMovieRepository(db *gorm.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

// FindAll retrieves every movie without loading ratings.
func (repo *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var movieModels []*model.MovieModel
	if err := repo.db.WithContext(ctx).Find(&movieModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	movies := make([]*entity.Movie, 0, len(movieModels))
	for _, movieM := range movieModels {
		movies = append(movies, toMovieDomain(movieM, false))
	}

	return movies, nil
}

// FindByID retrieves a single movie with its ratings eagerly loaded.
func (repo *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	var movieM model.MovieModel
	if err := repo.db.WithContext(ctx).Preload("Ratings").First(&movieM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMovieNotFound
		}

		return nil, errors.Wrap(err, "failed to find movie by id")
	}

	return toMovieDomain(&movieM, true), nil
}

// Exists reports whether a movie with the given ID is persisted.
func (repo *movieRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MovieModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check movie existence")
	}

	return count > 0, nil
}

// Create persists a new movie entity to the database.
func (repo *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	movieM := fromMovieDomain(movie)

	if err := repo.db.WithContext(ctx).Create(movieM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required movie information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create movie")
	}

	movie.ID = movieM.ID
	movie.CreatedAt = movieM.CreatedAt
	movie.UpdatedAt = movieM.UpdatedAt

	return nil
}

// Update saves the full state of an existing movie entity.
func (repo *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	movieM := fromMovieDomain(movie)

	if err := repo.db.WithContext(ctx).Save(movieM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required movie information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update movie")
	}

	movie.UpdatedAt = movieM.UpdatedAt

	return nil
}

// Delete removes a movie by ID. Ratings referencing it are left in place.
func (repo *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MovieModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete movie")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMovieDomain converts a GORM MovieModel to a domain Movie entity.
// When withRatings is set the ratings collection is always materialized,
// empty when none exist.
func toMovieDomain(data *model.MovieModel, withRatings bool) *entity.Movie {
	if data == nil {
		return nil
	}

	movie := &entity.Movie{
		ID:        data.ID,
		Title:     data.Title,
		Year:      data.Year,
		Director:  data.Director,
		Duration:  data.Duration,
		Genre:     data.Genre,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if withRatings {
		ratings := make([]*entity.Rating, 0, len(data.Ratings))
		for i := range data.Ratings {
			ratings = append(ratings, toRatingDomain(&data.Ratings[i]))
		}
		movie.Ratings = ratings
	}

	return movie
}

// fromMovieDomain converts a domain Movie entity to a GORM MovieModel.
// The ratings collection is derived at read time and never written back
// through the movie row.
func fromMovieDomain(data *entity.Movie) *model.MovieModel {
	if data == nil {
		return nil
	}

	return &model.MovieModel{
		ID:        data.ID,
		Title:     data.Title,
		Year:      data.Year,
		Director:  data.Director,
		Duration:  data.Duration,
		Genre:     data.Genre,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
