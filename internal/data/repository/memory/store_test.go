package memory

import (
	"context"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	factory  repository.UnitOfWorkFactory
	genre    *entity.Genre
	director *entity.Director
	actor    *entity.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		factory:  NewUnitOfWorkFactory(NewStore()),
		genre:    &entity.Genre{Name: "Drama"},
		director: &entity.Director{Name: "Frank Darabont"},
		actor:    &entity.Actor{Name: "Morgan Freeman"},
	}

	uow := f.factory.New()
	uow.Genres().Add(f.genre)
	uow.Directors().Add(f.director)
	uow.Actors().Add(f.actor)
	require.NoError(t, uow.Complete(context.Background()))

	return f
}

func (f *fixture) addMovie(t *testing.T, title string) *entity.Movie {
	t.Helper()

	movie := &entity.Movie{
		Title:      title,
		Year:       1994,
		Duration:   142,
		GenreID:    f.genre.ID,
		DirectorID: f.director.ID,
		Details: &entity.MovieDetails{
			Synopsis: "Two prisoners bond over a number of years.",
			Language: "English",
			Budget:   decimal.NewFromInt(25_000_000),
		},
		Cast: []*entity.MovieActor{{ActorID: f.actor.ID}},
	}

	uow := f.factory.New()
	uow.Movies().Add(movie)
	require.NoError(t, uow.Complete(context.Background()))

	return movie
}

func TestMovieAddLoadsAggregate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	movie := f.addMovie(t, "The Shawshank Redemption")

	assert.Equal(t, int64(1), movie.ID)
	assert.Equal(t, 1, movie.Version)

	got, err := f.factory.New().Movies().GetByID(ctx, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Drama", got.GenreName())
	assert.Equal(t, "Frank Darabont", got.DirectorName())
	require.NotNil(t, got.Details)
	assert.True(t, got.Details.Budget.Equal(decimal.NewFromInt(25_000_000)))
	require.Len(t, got.Cast, 1)
	require.NotNil(t, got.Cast[0].Actor)
	assert.Equal(t, "Morgan Freeman", got.Cast[0].Actor.Name)
	assert.Empty(t, got.Reviews)
}

func TestGetByIDMissing(t *testing.T) {
	f := newFixture(t)

	movie, err := f.factory.New().Movies().GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, movie)
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	movie := f.addMovie(t, "Original")

	loaded, err := f.factory.New().Movies().GetByID(ctx, movie.ID)
	require.NoError(t, err)
	loaded.Title = "Changed without commit"

	again, err := f.factory.New().Movies().GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title)
}

func TestNothingVisibleBeforeComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	uow := f.factory.New()
	uow.Actors().Add(&entity.Actor{Name: "Tom Hanks"})

	actors, err := f.factory.New().Actors().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, actors, 1)

	require.NoError(t, uow.Complete(ctx))

	actors, err = f.factory.New().Actors().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, actors, 2)
}

func TestCompleteIsAtomic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	uow := f.factory.New()
	uow.Actors().Add(&entity.Actor{Name: "Tom Hanks"})
	uow.Movies().Add(&entity.Movie{
		Title:      "Dangling",
		Year:       2000,
		Duration:   90,
		GenreID:    999,
		DirectorID: f.director.ID,
	})

	err := uow.Complete(ctx)
	require.ErrorIs(t, err, repository.ErrInvalidReference)

	actors, err := f.factory.New().Actors().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, actors, 1, "actor staged before the failing change must not be committed")

	movies, err := f.factory.New().Movies().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestStaleVersionConflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addMovie(t, "Shared")

	first, second := f.factory.New(), f.factory.New()

	a, err := first.Movies().GetByID(ctx, 1)
	require.NoError(t, err)
	b, err := second.Movies().GetByID(ctx, 1)
	require.NoError(t, err)

	a.Title = "First writer"
	first.Movies().Update(a)
	require.NoError(t, first.Complete(ctx))
	assert.Equal(t, 2, a.Version)

	b.Title = "Second writer"
	second.Movies().Update(b)
	assert.ErrorIs(t, second.Complete(ctx), repository.ErrConcurrencyConflict)

	stored, err := f.factory.New().Movies().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "First writer", stored.Title)
}

func TestTouchBumpsOnlyTheMovieVersion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addMovie(t, "Watched")

	first, second := f.factory.New(), f.factory.New()

	a, err := first.Movies().GetByID(ctx, 1)
	require.NoError(t, err)
	b, err := second.Movies().GetByID(ctx, 1)
	require.NoError(t, err)

	first.Movies().Touch(a)
	first.Reviews().Add(&entity.MovieReview{MovieID: a.ID, ReviewerName: "First", Rating: 8})
	require.NoError(t, first.Complete(ctx))
	assert.Equal(t, 2, a.Version)

	second.Movies().Touch(b)
	second.Reviews().Add(&entity.MovieReview{MovieID: b.ID, ReviewerName: "Second", Rating: 2})
	assert.ErrorIs(t, second.Complete(ctx), repository.ErrConcurrencyConflict)

	stored, err := f.factory.New().Movies().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Watched", stored.Title)
	assert.Equal(t, 2, stored.Version)
	require.Len(t, stored.Reviews, 1)
	assert.Equal(t, "First", stored.Reviews[0].ReviewerName)
}

func TestGenreNamesAreNotUnique(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	uow := f.factory.New()
	uow.Genres().Add(&entity.Genre{Name: f.genre.Name})
	require.NoError(t, uow.Complete(ctx))

	genres, err := f.factory.New().Genres().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, 2)
}

func TestRemoveMovieCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	movie := f.addMovie(t, "Doomed")

	uow := f.factory.New()
	uow.Reviews().Add(&entity.MovieReview{MovieID: movie.ID, ReviewerName: "Ann", Rating: 8})
	require.NoError(t, uow.Complete(ctx))

	loaded, err := f.factory.New().Movies().GetByID(ctx, movie.ID)
	require.NoError(t, err)

	uow = f.factory.New()
	uow.Movies().Remove(loaded)
	require.NoError(t, uow.Complete(ctx))

	reviews, err := f.factory.New().Reviews().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	exists, err := f.factory.New().Movies().Exists(ctx, movie.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Actor survives; only the link is gone
	actor, err := f.factory.New().Actors().GetByID(ctx, f.actor.ID)
	require.NoError(t, err)
	assert.NotNil(t, actor)
}

func TestRemoveActorDropsCastLinks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	movie := f.addMovie(t, "Cast")

	actor, err := f.factory.New().Actors().GetByID(ctx, f.actor.ID)
	require.NoError(t, err)

	uow := f.factory.New()
	uow.Actors().Remove(actor)
	require.NoError(t, uow.Complete(ctx))

	loaded, err := f.factory.New().Movies().GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Cast)
}

func TestReviewLoadsMovie(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	movie := f.addMovie(t, "Reviewed")

	review := &entity.MovieReview{MovieID: movie.ID, ReviewerName: "Ann", Rating: 9, Comment: "Great"}
	uow := f.factory.New()
	uow.Reviews().Add(review)
	require.NoError(t, uow.Complete(ctx))

	got, err := f.factory.New().Reviews().GetByID(ctx, review.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Movie)
	assert.Equal(t, "Reviewed", got.Movie.Title)
	assert.Equal(t, "Drama", got.Movie.GenreName())
}

func TestCompleteHonorsCanceledContext(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uow := f.factory.New()
	uow.Actors().Add(&entity.Actor{Name: "Never"})
	assert.ErrorIs(t, uow.Complete(ctx), context.Canceled)

	actors, err := f.factory.New().Actors().GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, actors, 1)
}
