package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireActor(r chi.Router, actorHandler *adaptor.ActorHandler) {
	r.Route("/actors", func(r chi.Router) {
		r.Get("/", actorHandler.GetActors)
		r.Post("/", actorHandler.CreateActor)
		r.Get("/{id}", actorHandler.GetActorByID)
		r.Put("/{id}", actorHandler.UpdateActor)
		r.Delete("/{id}", actorHandler.DeleteActor)
	})
}
