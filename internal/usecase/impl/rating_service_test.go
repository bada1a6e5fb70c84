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

func newRatingServiceForTest(env *testEnv) usecase.RatingUsecase {
	return NewRatingService(RatingServiceParams{
		TxManager:  env.tx,
		RatingRepo: env.ratings,
		Logger:     discardLogger(),
	})
}

func TestRatingService_Create_MovieMustExist(t *testing.T) {
	env := newTestEnv()
	ratingSvc := newRatingServiceForTest(env)

	_, err := ratingSvc.Create(context.Background(), &usecase.CreateRatingInput{
		MovieID: uuid.New(),
		Review:  "Referenced movie never existed",
		Score:   3,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRatingService_Create_ResolvesMovie(t *testing.T) {
	env := newTestEnv()
	movieSvc := newMovieServiceForTest(env)
	ratingSvc := newRatingServiceForTest(env)

	movie := createTestMovie(t, movieSvc)

	created, err := ratingSvc.Create(context.Background(), &usecase.CreateRatingInput{
		MovieID: movie.ID,
		Review:  "Hackman at his paranoid best.",
		Score:   5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	found, err := ratingSvc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Movie)
	assert.Equal(t, movie.ID, found.Movie.ID)
	assert.Equal(t, movie.Title, found.Movie.Title)
}

func TestRatingService_Get_UnknownID(t *testing.T) {
	env := newTestEnv()
	ratingSvc := newRatingServiceForTest(env)

	_, err := ratingSvc.Get(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRatingService_Update_Partial(t *testing.T) {
	env := newTestEnv()
	movieSvc := newMovieServiceForTest(env)
	ratingSvc := newRatingServiceForTest(env)

	movie := createTestMovie(t, movieSvc)
	created, err := ratingSvc.Create(context.Background(), &usecase.CreateRatingInput{
		MovieID: movie.ID,
		Review:  "First impression.",
		Score:   3,
	})
	require.NoError(t, err)

	newScore := 4
	updated, err := ratingSvc.Update(context.Background(), created.ID, &usecase.UpdateRatingInput{
		Score: &newScore,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, updated.Score)
	assert.Equal(t, "First impression.", updated.Review)
}

func TestRatingService_Delete_UnknownID(t *testing.T) {
	env := newTestEnv()
	ratingSvc := newRatingServiceForTest(env)

	err := ratingSvc.Delete(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
