// Package memory implements the repository contracts on top of process memory.
// It backs the service when STORAGE=memory and serves as the persistence fake in tests.
package memory

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
)

// Store holds committed rows. Rows are kept without navigation fields and
// every read hands out copies, so callers never alias stored state.
type Store struct {
	mu sync.RWMutex
	t  *tables
}

func NewStore() *Store {
	return &Store{t: newTables()}
}

type sequences struct {
	genre, director, actor, movie, details, review, cast int64
}

type tables struct {
	genres    map[int64]entity.Genre
	directors map[int64]entity.Director
	actors    map[int64]entity.Actor
	movies    map[int64]entity.Movie
	details   map[int64]entity.MovieDetails
	reviews   map[int64]entity.MovieReview
	cast      map[int64]entity.MovieActor
	seq       sequences
}

func newTables() *tables {
	return &tables{
		genres:    map[int64]entity.Genre{},
		directors: map[int64]entity.Director{},
		actors:    map[int64]entity.Actor{},
		movies:    map[int64]entity.Movie{},
		details:   map[int64]entity.MovieDetails{},
		reviews:   map[int64]entity.MovieReview{},
		cast:      map[int64]entity.MovieActor{},
	}
}

func (t *tables) clone() *tables {
	return &tables{
		genres:    maps.Clone(t.genres),
		directors: maps.Clone(t.directors),
		actors:    maps.Clone(t.actors),
		movies:    maps.Clone(t.movies),
		details:   maps.Clone(t.details),
		reviews:   maps.Clone(t.reviews),
		cast:      maps.Clone(t.cast),
		seq:       t.seq,
	}
}

func (s *Store) read(fn func(t *tables)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.t)
}

// commit applies changes to a copy of the committed tables and publishes the
// copy only when every change succeeded.
func (s *Store) commit(changes []func(t *tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.t.clone()
	for _, apply := range changes {
		if err := apply(next); err != nil {
			return err
		}
	}

	s.t = next
	return nil
}

func sortedIDs[V any](rows map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(rows))
}

func invalidReference(table string, id int64) error {
	return fmt.Errorf("%w: %s %d", repository.ErrInvalidReference, table, id)
}

// movieRow strips navigation before a movie is stored.
func movieRow(m *entity.Movie) entity.Movie {
	row := *m
	row.Genre = nil
	row.Director = nil
	row.Details = nil
	row.Reviews = nil
	row.Cast = nil
	return row
}

// movie returns a copy of the stored movie with genre and director attached.
func (t *tables) movie(id int64) *entity.Movie {
	row, ok := t.movies[id]
	if !ok {
		return nil
	}

	m := row
	if g, ok := t.genres[m.GenreID]; ok {
		m.Genre = &g
	}
	if d, ok := t.directors[m.DirectorID]; ok {
		m.Director = &d
	}
	return &m
}

// aggregate returns the movie with details, reviews and cast attached.
func (t *tables) aggregate(id int64) *entity.Movie {
	m := t.movie(id)
	if m == nil {
		return nil
	}

	m.Reviews = []*entity.MovieReview{}
	m.Cast = []*entity.MovieActor{}

	for _, detailsID := range sortedIDs(t.details) {
		if d := t.details[detailsID]; d.MovieID == id {
			m.Details = &d
			break
		}
	}

	for _, reviewID := range sortedIDs(t.reviews) {
		if r := t.reviews[reviewID]; r.MovieID == id {
			r.Movie = m
			m.Reviews = append(m.Reviews, &r)
		}
	}

	for _, linkID := range sortedIDs(t.cast) {
		if link := t.cast[linkID]; link.MovieID == id {
			if a, ok := t.actors[link.ActorID]; ok {
				link.Actor = &a
			}
			m.Cast = append(m.Cast, &link)
		}
	}

	return m
}

func (t *tables) checkMovieRefs(m *entity.Movie) error {
	if _, ok := t.genres[m.GenreID]; !ok {
		return invalidReference("genre", m.GenreID)
	}
	if _, ok := t.directors[m.DirectorID]; !ok {
		return invalidReference("director", m.DirectorID)
	}
	return nil
}

func (t *tables) insertDetails(d *entity.MovieDetails) error {
	if _, ok := t.movies[d.MovieID]; !ok {
		return invalidReference("movie", d.MovieID)
	}
	for _, existing := range t.details {
		if existing.MovieID == d.MovieID {
			return fmt.Errorf("details of movie %d already exist", d.MovieID)
		}
	}

	t.seq.details++
	d.ID = t.seq.details
	d.Version = 1
	t.details[d.ID] = *d
	return nil
}

func (t *tables) updateDetails(d *entity.MovieDetails) error {
	stored, ok := t.details[d.ID]
	if !ok || stored.Version != d.Version {
		return repository.ErrConcurrencyConflict
	}

	d.Version++
	t.details[d.ID] = *d
	return nil
}

func (t *tables) insertCast(link *entity.MovieActor) error {
	if _, ok := t.movies[link.MovieID]; !ok {
		return invalidReference("movie", link.MovieID)
	}
	if _, ok := t.actors[link.ActorID]; !ok {
		return invalidReference("actor", link.ActorID)
	}

	t.seq.cast++
	link.ID = t.seq.cast
	row := *link
	row.Actor = nil
	t.cast[link.ID] = row
	return nil
}

// deleteMovie removes the movie and every dependent row.
func (t *tables) deleteMovie(id int64) {
	delete(t.movies, id)
	maps.DeleteFunc(t.details, func(_ int64, d entity.MovieDetails) bool { return d.MovieID == id })
	maps.DeleteFunc(t.reviews, func(_ int64, r entity.MovieReview) bool { return r.MovieID == id })
	maps.DeleteFunc(t.cast, func(_ int64, c entity.MovieActor) bool { return c.MovieID == id })
}

func (t *tables) deleteActor(id int64) {
	delete(t.actors, id)
	maps.DeleteFunc(t.cast, func(_ int64, c entity.MovieActor) bool { return c.ActorID == id })
}
