package repository_test

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/migrations"
	"movie-catalog/pkg/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap/zaptest"
)

const (
	dbName      = "movie_catalog"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "postgres:17-alpine"
)

type PostgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        database.PgxIface
	factory   repository.UnitOfWorkFactory
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err, "failed to start postgres container")
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(database.Migrate(connStr, migrations.FS))
	// Applying again is a no-op
	s.Require().NoError(database.Migrate(connStr, migrations.FS))

	s.db, err = database.Connect(ctx, connStr, 5)
	s.Require().NoError(err)

	s.factory = repository.NewUnitOfWorkFactory(s.db, zaptest.NewLogger(s.T()))
}

func (s *PostgresSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.NoError(testcontainers.TerminateContainer(s.container))
	}
}

func (s *PostgresSuite) SetupTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `
		TRUNCATE movie_actors, movie_reviews, movie_details, movies, actors, directors, genres
		RESTART IDENTITY CASCADE
	`)
	s.Require().NoError(err)
}

func (s *PostgresSuite) seedReferences() (*entity.Genre, *entity.Director, *entity.Actor) {
	genre := &entity.Genre{Name: "Documentary"}
	director := &entity.Director{Name: "Werner Herzog"}
	actor := &entity.Actor{Name: "Werner Herzog"}

	uow := s.factory.New()
	uow.Genres().Add(genre)
	uow.Directors().Add(director)
	uow.Actors().Add(actor)
	s.Require().NoError(uow.Complete(context.Background()))

	return genre, director, actor
}

func (s *PostgresSuite) addMovie(genre *entity.Genre, director *entity.Director, actor *entity.Actor) *entity.Movie {
	movie := &entity.Movie{
		Title:      "Grizzly Man",
		Year:       2005,
		Duration:   103,
		GenreID:    genre.ID,
		DirectorID: director.ID,
		Details: &entity.MovieDetails{
			Synopsis: "Footage of a life among bears.",
			Language: "English",
			Budget:   decimal.RequireFromString("1234567.89"),
		},
	}
	if actor != nil {
		movie.Cast = []*entity.MovieActor{{ActorID: actor.ID}}
	}

	uow := s.factory.New()
	uow.Movies().Add(movie)
	s.Require().NoError(uow.Complete(context.Background()))

	return movie
}

func (s *PostgresSuite) TestMovieAggregateRoundTrip() {
	ctx := context.Background()
	genre, director, actor := s.seedReferences()
	movie := s.addMovie(genre, director, actor)

	s.Equal(int64(1), movie.ID)
	s.Equal(1, movie.Version)
	s.NotZero(movie.Details.ID)

	review := &entity.MovieReview{MovieID: movie.ID, ReviewerName: "Ann", Rating: 8, Comment: "Haunting"}
	uow := s.factory.New()
	uow.Reviews().Add(review)
	s.Require().NoError(uow.Complete(ctx))

	got, err := s.factory.New().Movies().GetByID(ctx, movie.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal("Documentary", got.GenreName())
	s.Equal("Werner Herzog", got.DirectorName())
	s.Require().NotNil(got.Details)
	s.True(got.Details.Budget.Equal(decimal.RequireFromString("1234567.89")), got.Details.Budget.String())
	s.Require().Len(got.Reviews, 1)
	s.Equal("Haunting", got.Reviews[0].Comment)
	s.Require().Len(got.Cast, 1)
	s.Equal("Werner Herzog", got.Cast[0].Actor.Name)

	storedReview, err := s.factory.New().Reviews().GetByID(ctx, review.ID)
	s.Require().NoError(err)
	s.Equal("Grizzly Man", storedReview.Movie.Title)
	s.Equal("Documentary", storedReview.Movie.GenreName())

	missing, err := s.factory.New().Movies().GetByID(ctx, 999)
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *PostgresSuite) TestStaleUpdateConflicts() {
	ctx := context.Background()
	genre, director, _ := s.seedReferences()
	movie := s.addMovie(genre, director, nil)

	first, second := s.factory.New(), s.factory.New()

	a, err := first.Movies().GetByID(ctx, movie.ID)
	s.Require().NoError(err)
	b, err := second.Movies().GetByID(ctx, movie.ID)
	s.Require().NoError(err)

	a.Title = "First"
	first.Movies().Update(a)
	s.Require().NoError(first.Complete(ctx))
	s.Equal(2, a.Version)

	b.Title = "Second"
	second.Movies().Update(b)
	s.ErrorIs(second.Complete(ctx), repository.ErrConcurrencyConflict)

	stored, err := s.factory.New().Movies().GetByID(ctx, movie.ID)
	s.Require().NoError(err)
	s.Equal("First", stored.Title)
}

func (s *PostgresSuite) TestTouchSerializesReviewWriters() {
	ctx := context.Background()
	genre, director, _ := s.seedReferences()
	movie := s.addMovie(genre, director, nil)

	first, second := s.factory.New(), s.factory.New()

	a, err := first.Movies().GetByID(ctx, movie.ID)
	s.Require().NoError(err)
	b, err := second.Movies().GetByID(ctx, movie.ID)
	s.Require().NoError(err)

	first.Movies().Touch(a)
	first.Reviews().Add(&entity.MovieReview{MovieID: a.ID, ReviewerName: "First", Rating: 7})
	s.Require().NoError(first.Complete(ctx))
	s.Equal(2, a.Version)

	second.Movies().Touch(b)
	second.Reviews().Add(&entity.MovieReview{MovieID: b.ID, ReviewerName: "Second", Rating: 3})
	s.ErrorIs(second.Complete(ctx), repository.ErrConcurrencyConflict)

	stored, err := s.factory.New().Movies().GetByID(ctx, movie.ID)
	s.Require().NoError(err)
	s.Require().Len(stored.Reviews, 1)
	s.Equal("First", stored.Reviews[0].ReviewerName)
}

func (s *PostgresSuite) TestGenreNamesAreNotUnique() {
	ctx := context.Background()

	uow := s.factory.New()
	uow.Genres().Add(&entity.Genre{Name: "Drama"})
	uow.Genres().Add(&entity.Genre{Name: "Drama"})
	s.Require().NoError(uow.Complete(ctx))

	genres, err := s.factory.New().Genres().GetAll(ctx)
	s.Require().NoError(err)
	s.Len(genres, 2)
}

func (s *PostgresSuite) TestCompleteRollsBackOnFailure() {
	ctx := context.Background()
	genre, director, _ := s.seedReferences()

	uow := s.factory.New()
	uow.Actors().Add(&entity.Actor{Name: "Never stored"})
	uow.Movies().Add(&entity.Movie{
		Title:      "Dangling",
		Year:       2000,
		Duration:   90,
		GenreID:    genre.ID,
		DirectorID: director.ID + 100,
	})

	s.ErrorIs(uow.Complete(ctx), repository.ErrInvalidReference)

	actors, err := s.factory.New().Actors().GetAll(ctx)
	s.Require().NoError(err)
	s.Len(actors, 1)

	movies, err := s.factory.New().Movies().GetAll(ctx)
	s.Require().NoError(err)
	s.Empty(movies)
}

func (s *PostgresSuite) TestDeleteCascades() {
	ctx := context.Background()
	genre, director, actor := s.seedReferences()
	movie := s.addMovie(genre, director, actor)

	uow := s.factory.New()
	uow.Reviews().Add(&entity.MovieReview{MovieID: movie.ID, ReviewerName: "Bob", Rating: 4})
	s.Require().NoError(uow.Complete(ctx))

	loaded, err := s.factory.New().Movies().GetByID(ctx, movie.ID)
	s.Require().NoError(err)

	uow = s.factory.New()
	uow.Movies().Remove(loaded)
	s.Require().NoError(uow.Complete(ctx))

	reviews, err := s.factory.New().Reviews().GetAll(ctx)
	s.Require().NoError(err)
	s.Empty(reviews)

	var links int
	s.Require().NoError(s.db.QueryRow(ctx, `SELECT COUNT(*) FROM movie_actors`).Scan(&links))
	s.Zero(links)

	exists, err := s.factory.New().Actors().Exists(ctx, actor.ID)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *PostgresSuite) TestServiceOverPostgres() {
	ctx := context.Background()
	genre, director, actor := s.seedReferences()
	svc := usecase.NewService(s.factory, zaptest.NewLogger(s.T()))

	for i := 0; i < 12; i++ {
		_, err := svc.Movie.CreateMovie(ctx, &request.MovieRequest{
			Title:      "Film",
			Year:       2000 + i%2,
			Duration:   90,
			GenreID:    genre.ID,
			DirectorID: director.ID,
		})
		s.Require().NoError(err)
	}

	page, err := svc.Movie.GetMovies(ctx, request.PaginatedRequest{Page: 2, PageSize: 5}, request.MovieFilter{Year: ptr(2000)})
	s.Require().NoError(err)
	s.Len(page.Data, 1)
	s.Equal(int64(6), page.Meta.TotalItems)
	s.Equal(2, page.Meta.TotalPages)

	s.Require().NoError(svc.Movie.AddActorToMovie(ctx, 1, actor.ID))
	s.ErrorIs(svc.Movie.AddActorToMovie(ctx, 1, actor.ID), usecase.ErrConflict)

	err = svc.Movie.PatchMovie(ctx, 1, &request.MoviePatchRequest{Budget: ptr(decimal.NewFromInt(20_000_000))})
	var validationErr *usecase.ValidationError
	s.ErrorAs(err, &validationErr)

	s.Require().NoError(svc.Movie.PatchMovie(ctx, 1, &request.MoviePatchRequest{Budget: ptr(decimal.NewFromInt(5_000_000))}))
	details, err := svc.Movie.GetMovieDetails(ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(details.Details)
	s.True(details.Details.Budget.Equal(decimal.NewFromInt(5_000_000)))
}

func ptr[T any](v T) *T {
	return &v
}
