package memory

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
)

type movieRepository struct {
	uow *unitOfWork
}

func (r *movieRepository) GetAll(ctx context.Context) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	r.uow.store.read(func(t *tables) {
		for _, id := range sortedIDs(t.movies) {
			movies = append(movies, t.movie(id))
		}
	})
	return movies, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*entity.Movie, error) {
	var movie *entity.Movie
	r.uow.store.read(func(t *tables) {
		movie = t.aggregate(id)
	})
	return movie, nil
}

func (r *movieRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	r.uow.store.read(func(t *tables) {
		_, ok = t.movies[id]
	})
	return ok, nil
}

func (r *movieRepository) Add(movie *entity.Movie) {
	r.uow.stage(func(t *tables) error {
		if err := t.checkMovieRefs(movie); err != nil {
			return err
		}

		t.seq.movie++
		movie.ID = t.seq.movie
		movie.Version = 1
		t.movies[movie.ID] = movieRow(movie)

		if movie.Details != nil {
			movie.Details.MovieID = movie.ID
			if err := t.insertDetails(movie.Details); err != nil {
				return err
			}
		}
		for _, link := range movie.Cast {
			link.MovieID = movie.ID
			if err := t.insertCast(link); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *movieRepository) Update(movie *entity.Movie) {
	r.uow.stage(func(t *tables) error {
		stored, ok := t.movies[movie.ID]
		if !ok || stored.Version != movie.Version {
			return repository.ErrConcurrencyConflict
		}
		if err := t.checkMovieRefs(movie); err != nil {
			return err
		}

		movie.Version++
		t.movies[movie.ID] = movieRow(movie)

		if d := movie.Details; d != nil {
			d.MovieID = movie.ID
			var err error
			if d.ID == 0 {
				err = t.insertDetails(d)
			} else {
				err = t.updateDetails(d)
			}
			if err != nil {
				return err
			}
		}
		for _, link := range movie.Cast {
			if link.ID != 0 {
				continue
			}
			link.MovieID = movie.ID
			if err := t.insertCast(link); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *movieRepository) Remove(movie *entity.Movie) {
	r.uow.stage(func(t *tables) error {
		stored, ok := t.movies[movie.ID]
		if !ok || stored.Version != movie.Version {
			return repository.ErrConcurrencyConflict
		}
		t.deleteMovie(movie.ID)
		return nil
	})
}

func (r *movieRepository) Touch(movie *entity.Movie) {
	r.uow.stage(func(t *tables) error {
		stored, ok := t.movies[movie.ID]
		if !ok || stored.Version != movie.Version {
			return repository.ErrConcurrencyConflict
		}
		movie.Version++
		stored.Version = movie.Version
		t.movies[movie.ID] = stored
		return nil
	})
}
