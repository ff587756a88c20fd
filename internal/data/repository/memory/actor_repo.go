package memory

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
)

type actorRepository struct {
	uow *unitOfWork
}

func (r *actorRepository) GetAll(ctx context.Context) ([]*entity.Actor, error) {
	var actors []*entity.Actor
	r.uow.store.read(func(t *tables) {
		for _, id := range sortedIDs(t.actors) {
			a := t.actors[id]
			actors = append(actors, &a)
		}
	})
	return actors, nil
}

func (r *actorRepository) GetByID(ctx context.Context, id int64) (*entity.Actor, error) {
	var actor *entity.Actor
	r.uow.store.read(func(t *tables) {
		if a, ok := t.actors[id]; ok {
			actor = &a
		}
	})
	return actor, nil
}

func (r *actorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	r.uow.store.read(func(t *tables) {
		_, ok = t.actors[id]
	})
	return ok, nil
}

func (r *actorRepository) Add(actor *entity.Actor) {
	r.uow.stage(func(t *tables) error {
		t.seq.actor++
		actor.ID = t.seq.actor
		actor.Version = 1
		t.actors[actor.ID] = *actor
		return nil
	})
}

func (r *actorRepository) Update(actor *entity.Actor) {
	r.uow.stage(func(t *tables) error {
		stored, ok := t.actors[actor.ID]
		if !ok || stored.Version != actor.Version {
			return repository.ErrConcurrencyConflict
		}
		actor.Version++
		t.actors[actor.ID] = *actor
		return nil
	})
}

func (r *actorRepository) Remove(actor *entity.Actor) {
	r.uow.stage(func(t *tables) error {
		stored, ok := t.actors[actor.ID]
		if !ok || stored.Version != actor.Version {
			return repository.ErrConcurrencyConflict
		}
		t.deleteActor(actor.ID)
		return nil
	})
}
