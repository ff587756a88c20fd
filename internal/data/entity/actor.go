package entity

type Actor struct {
	Base
	Name string `db:"name"`
}

// MovieActor links an actor to a movie. At most one link exists per pair.
type MovieActor struct {
	BaseSimple
	MovieID int64 `db:"movie_id"`
	ActorID int64 `db:"actor_id"`

	Actor *Actor
}
