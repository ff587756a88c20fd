package memory

import (
	"context"

	"movie-catalog/internal/data/repository"
)

type unitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) repository.UnitOfWorkFactory {
	return &unitOfWorkFactory{store: store}
}

func (f *unitOfWorkFactory) New() repository.UnitOfWork {
	u := &unitOfWork{store: f.store}
	u.movies = &movieRepository{uow: u}
	u.reviews = &reviewRepository{uow: u}
	u.actors = &actorRepository{uow: u}
	u.genres = &genreRepository{uow: u}
	u.directors = &directorRepository{uow: u}
	return u
}

type unitOfWork struct {
	store   *Store
	changes []func(t *tables) error

	movies    *movieRepository
	reviews   *reviewRepository
	actors    *actorRepository
	genres    *genreRepository
	directors *directorRepository
}

func (u *unitOfWork) Movies() repository.MovieRepository       { return u.movies }
func (u *unitOfWork) Reviews() repository.ReviewRepository     { return u.reviews }
func (u *unitOfWork) Actors() repository.ActorRepository       { return u.actors }
func (u *unitOfWork) Genres() repository.GenreRepository       { return u.genres }
func (u *unitOfWork) Directors() repository.DirectorRepository { return u.directors }

func (u *unitOfWork) stage(apply func(t *tables) error) {
	u.changes = append(u.changes, apply)
}

func (u *unitOfWork) Complete(ctx context.Context) error {
	changes := u.changes
	u.changes = nil

	if err := ctx.Err(); err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}

	return u.store.commit(changes)
}
