package response

import "movie-catalog/internal/data/entity"

type ActorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ActorToResponse(actor *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:   actor.ID,
		Name: actor.Name,
	}
}
