package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	created, err := c.service.Actor.CreateActor(ctx, &request.ActorRequest{Name: "Cate Blanchett"})
	require.NoError(t, err)
	assert.Equal(t, response.ActorResponse{ID: 1, Name: "Cate Blanchett"}, *created)

	require.NoError(t, c.service.Actor.UpdateActor(ctx, created.ID, &request.ActorUpdateRequest{ID: created.ID, Name: "Cate B."}))

	got, err := c.service.Actor.GetActorByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cate B.", got.Name)

	require.NoError(t, c.service.Actor.DeleteActor(ctx, created.ID))

	_, err = c.service.Actor.GetActorByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, c.service.Actor.DeleteActor(ctx, created.ID), ErrNotFound)
}

func TestActorValidation(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	var validationErr *ValidationError
	_, err := c.service.Actor.CreateActor(ctx, &request.ActorRequest{})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "name")

	id := c.createActor(t, "Someone")
	err = c.service.Actor.UpdateActor(ctx, id, &request.ActorUpdateRequest{ID: id + 1, Name: "Other"})
	require.ErrorAs(t, err, &validationErr)

	err = c.service.Actor.UpdateActor(ctx, 404, &request.ActorUpdateRequest{ID: 404, Name: "Other"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetActorsPaginated(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		c.createActor(t, name)
	}

	page, err := c.service.Actor.GetActors(ctx, request.PaginatedRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []response.ActorResponse{{ID: 3, Name: "C"}, {ID: 4, Name: "D"}}, page.Data)
	assert.Equal(t, response.PaginationMeta{TotalItems: 5, TotalPages: 3, CurrentPage: 2, PageSize: 2}, page.Meta)
}

func TestDeleteActorRemovesCastLink(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	movieID := c.createMovie(t, c.movieRequest("Ensemble", 2011))
	actorID := c.createActor(t, "Leaving")
	require.NoError(t, c.service.Movie.AddActorToMovie(ctx, movieID, actorID))

	require.NoError(t, c.service.Actor.DeleteActor(ctx, actorID))

	details, err := c.service.Movie.GetMovieDetails(ctx, movieID)
	require.NoError(t, err)
	assert.Empty(t, details.Actors)
}

func TestCatalogLists(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	genres, err := c.service.Catalog.GetGenres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []response.GenreResponse{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Documentary"}}, genres)

	directors, err := c.service.Catalog.GetDirectors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []response.DirectorResponse{{ID: 1, Name: "Christopher Nolan"}, {ID: 2, Name: "Sofia Coppola"}}, directors)
}
