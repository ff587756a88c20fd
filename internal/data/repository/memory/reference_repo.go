package memory

import (
	"context"

	"movie-catalog/internal/data/entity"
)

type genreRepository struct {
	uow *unitOfWork
}

func (r *genreRepository) GetAll(ctx context.Context) ([]*entity.Genre, error) {
	var genres []*entity.Genre
	r.uow.store.read(func(t *tables) {
		for _, id := range sortedIDs(t.genres) {
			g := t.genres[id]
			genres = append(genres, &g)
		}
	})
	return genres, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*entity.Genre, error) {
	var genre *entity.Genre
	r.uow.store.read(func(t *tables) {
		if g, ok := t.genres[id]; ok {
			genre = &g
		}
	})
	return genre, nil
}

func (r *genreRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	r.uow.store.read(func(t *tables) {
		_, ok = t.genres[id]
	})
	return ok, nil
}

func (r *genreRepository) Add(genre *entity.Genre) {
	r.uow.stage(func(t *tables) error {
		t.seq.genre++
		genre.ID = t.seq.genre
		t.genres[genre.ID] = *genre
		return nil
	})
}

type directorRepository struct {
	uow *unitOfWork
}

func (r *directorRepository) GetAll(ctx context.Context) ([]*entity.Director, error) {
	var directors []*entity.Director
	r.uow.store.read(func(t *tables) {
		for _, id := range sortedIDs(t.directors) {
			d := t.directors[id]
			directors = append(directors, &d)
		}
	})
	return directors, nil
}

func (r *directorRepository) GetByID(ctx context.Context, id int64) (*entity.Director, error) {
	var director *entity.Director
	r.uow.store.read(func(t *tables) {
		if d, ok := t.directors[id]; ok {
			director = &d
		}
	})
	return director, nil
}

func (r *directorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	r.uow.store.read(func(t *tables) {
		_, ok = t.directors[id]
	})
	return ok, nil
}

func (r *directorRepository) Add(director *entity.Director) {
	r.uow.stage(func(t *tables) error {
		t.seq.director++
		director.ID = t.seq.director
		t.directors[director.ID] = *director
		return nil
	})
}
