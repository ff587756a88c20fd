package request

type ActorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ActorUpdateRequest replaces an actor. ID must match the route id.
type ActorUpdateRequest struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}
