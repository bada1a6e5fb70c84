package impl

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// In-memory test doubles for the repository interfaces. They mimic the real
// store's contract: generated IDs on create, sentinel errors on absent IDs.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User

	// Mirrors the store's foreign key: a user row cannot be deleted while
	// session rows still reference it. Set by newTestEnv.
	sessions *fakeSessionRepo
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}

	return out, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = uuid.New()
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	if r.sessions != nil {
		for _, session := range r.sessions.sessions {
			if session.UserID == id {
				return errors.New("sessions still reference user")
			}
		}
	}
	delete(r.users, id)

	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
	users    *fakeUserRepo
}

func newFakeSessionRepo(users *fakeUserRepo) *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session), users: users}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	session.ID = uuid.New()
	copied := *session
	r.sessions[session.ID] = &copied

	return nil
}

func (r *fakeSessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	copied := *session
	if r.users != nil {
		if owner, err := r.users.FindByID(ctx, session.UserID); err == nil {
			copied.User = owner
		}
	}

	return &copied, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.sessions[id]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(r.sessions, id)

	return nil
}

func (r *fakeSessionRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	for id, session := range r.sessions {
		if session.UserID == userID {
			delete(r.sessions, id)
		}
	}

	return nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (r *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	out := make([]*entity.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		out = append(out, movie)
	}

	return out, nil
}

func (r *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, repository.ErrMovieNotFound
	}
	copied := *movie
	if copied.Ratings == nil {
		copied.Ratings = make([]*entity.Rating, 0)
	}

	return &copied, nil
}

func (r *fakeMovieRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.movies[id]

	return ok, nil
}

func (r *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	movie.ID = uuid.New()
	copied := *movie
	r.movies[movie.ID] = &copied

	return nil
}

func (r *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	if _, ok := r.movies[movie.ID]; !ok {
		return repository.ErrMovieNotFound
	}
	copied := *movie
	r.movies[movie.ID] = &copied

	return nil
}

func (r *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.movies[id]; !ok {
		return repository.ErrMovieNotFound
	}
	delete(r.movies, id)

	return nil
}

type fakeRatingRepo struct {
	ratings map[uuid.UUID]*entity.Rating
	movies  *fakeMovieRepo
}

func newFakeRatingRepo(movies *fakeMovieRepo) *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[uuid.UUID]*entity.Rating), movies: movies}
}

func (r *fakeRatingRepo) FindAll(ctx context.Context) ([]*entity.Rating, error) {
	out := make([]*entity.Rating, 0, len(r.ratings))
	for _, rating := range r.ratings {
		out = append(out, rating)
	}

	return out, nil
}

func (r *fakeRatingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	rating, ok := r.ratings[id]
	if !ok {
		return nil, repository.ErrRatingNotFound
	}
	copied := *rating
	if r.movies != nil {
		if movie, err := r.movies.FindByID(ctx, rating.MovieID); err == nil {
			copied.Movie = movie
		}
	}

	return &copied, nil
}

func (r *fakeRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	if r.movies != nil {
		if _, ok := r.movies.movies[rating.MovieID]; !ok {
			return repository.ErrMovieNotFound
		}
	}
	rating.ID = uuid.New()
	copied := *rating
	r.ratings[rating.ID] = &copied

	return nil
}

func (r *fakeRatingRepo) Update(ctx context.Context, rating *entity.Rating) error {
	if _, ok := r.ratings[rating.ID]; !ok {
		return repository.ErrRatingNotFound
	}
	copied := *rating
	r.ratings[rating.ID] = &copied

	return nil
}

func (r *fakeRatingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.ratings[id]; !ok {
		return repository.ErrRatingNotFound
	}
	delete(r.ratings, id)

	return nil
}

// fakeTxManager hands every closure the same factory; there is no real
// transaction to roll back, which is fine for contract-level tests.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

type fakeRepoFactory struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	movies   *fakeMovieRepo
	ratings  *fakeRatingRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository       { return f.users }
func (f *fakeRepoFactory) SessionRepo() repository.SessionRepository { return f.sessions }
func (f *fakeRepoFactory) MovieRepo() repository.MovieRepository     { return f.movies }
func (f *fakeRepoFactory) RatingRepo() repository.RatingRepository   { return f.ratings }

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeHasher produces a distinct tagged digest per call, matching the real
// hasher's non-determinism without the bcrypt cost.
type fakeHasher struct {
	counter atomic.Int64
}

func (h *fakeHasher) Hash(password string) (string, error) {
	return fmt.Sprintf("digest:%s:%d", password, h.counter.Add(1)), nil
}

func (h *fakeHasher) Check(password, digest string) bool {
	return strings.HasPrefix(digest, "digest:"+password+":")
}

type testEnv struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	movies   *fakeMovieRepo
	ratings  *fakeRatingRepo
	tx       *fakeTxManager
	hasher   *fakeHasher
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo(users)
	users.sessions = sessions
	movies := newFakeMovieRepo()
	ratings := newFakeRatingRepo(movies)

	return &testEnv{
		users:    users,
		sessions: sessions,
		movies:   movies,
		ratings:  ratings,
		tx: &fakeTxManager{factory: &fakeRepoFactory{
			users:    users,
			sessions: sessions,
			movies:   movies,
			ratings:  ratings,
		}},
		hasher: &fakeHasher{},
	}
}
