package usecase

import (
	"context"
	"sync"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/data/repository/memory"
	"movie-catalog/internal/dto/request"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func ptr[T any](v T) *T {
	return &v
}

type testCatalog struct {
	factory     repository.UnitOfWorkFactory
	service     *Service
	drama       *entity.Genre
	documentary *entity.Genre
	nolan       *entity.Director
	coppola     *entity.Director
}

func newTestCatalog(t *testing.T) *testCatalog {
	t.Helper()

	c := &testCatalog{
		factory:     memory.NewUnitOfWorkFactory(memory.NewStore()),
		drama:       &entity.Genre{Name: "Drama"},
		documentary: &entity.Genre{Name: "Documentary"},
		nolan:       &entity.Director{Name: "Christopher Nolan"},
		coppola:     &entity.Director{Name: "Sofia Coppola"},
	}

	uow := c.factory.New()
	uow.Genres().Add(c.drama)
	uow.Genres().Add(c.documentary)
	uow.Directors().Add(c.nolan)
	uow.Directors().Add(c.coppola)
	require.NoError(t, uow.Complete(context.Background()))

	c.service = NewService(c.factory, zaptest.NewLogger(t))
	return c
}

func (c *testCatalog) createMovie(t *testing.T, req request.MovieRequest) int64 {
	t.Helper()

	resp, err := c.service.Movie.CreateMovie(context.Background(), &req)
	require.NoError(t, err)
	return resp.ID
}

func (c *testCatalog) movieRequest(title string, year int) request.MovieRequest {
	return request.MovieRequest{
		Title:      title,
		Year:       year,
		Duration:   120,
		GenreID:    c.drama.ID,
		DirectorID: c.nolan.ID,
	}
}

func (c *testCatalog) createActor(t *testing.T, name string) int64 {
	t.Helper()

	resp, err := c.service.Actor.CreateActor(context.Background(), &request.ActorRequest{Name: name})
	require.NoError(t, err)
	return resp.ID
}

func (c *testCatalog) createReview(t *testing.T, movieID int64, rating int) int64 {
	t.Helper()

	resp, err := c.service.Review.CreateReview(context.Background(), &request.ReviewRequest{
		MovieID:      movieID,
		ReviewerName: "Reviewer",
		Rating:       rating,
	})
	require.NoError(t, err)
	return resp.ID
}

// racingFactory runs interfere once, right before the first Complete of a
// unit of work it handed out, to simulate a concurrent writer.
type racingFactory struct {
	repository.UnitOfWorkFactory
	once      sync.Once
	interfere func()
}

func (f *racingFactory) New() repository.UnitOfWork {
	return &racingUnitOfWork{UnitOfWork: f.UnitOfWorkFactory.New(), factory: f}
}

type racingUnitOfWork struct {
	repository.UnitOfWork
	factory *racingFactory
}

func (u *racingUnitOfWork) Complete(ctx context.Context) error {
	u.factory.once.Do(u.factory.interfere)
	return u.UnitOfWork.Complete(ctx)
}
