package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)   // GET /movies?genreId&year&directorId&page&pageSize
		r.Post("/", movieHandler.CreateMovie) // POST /movies

		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Patch("/{id}", movieHandler.PatchMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)

		r.Get("/{id}/details", movieHandler.GetMovieDetails)
		r.Get("/{id}/reviews", movieHandler.GetMovieReviews)

		// Cast association
		r.Post("/{id}/actors/{actorId}", movieHandler.AddActorToMovie)
	})
}
