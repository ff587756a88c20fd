package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UnitOfWork groups the repositories of one request. Add, Update and Remove
// only stage changes; nothing reaches the store until Complete.
type UnitOfWork interface {
	Movies() MovieRepository
	Reviews() ReviewRepository
	Actors() ActorRepository
	Genres() GenreRepository
	Directors() DirectorRepository

	// Complete applies every staged change atomically. A version mismatch
	// surfaces as ErrConcurrencyConflict and a dangling foreign key as
	// ErrInvalidReference. Staged changes are discarded either way.
	Complete(ctx context.Context) error
}

// UnitOfWorkFactory hands out a fresh UnitOfWork per request.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}

type change struct {
	op    string
	apply func(ctx context.Context, tx pgx.Tx) error
}

// session collects the changes staged by the repositories of one unit of work.
type session struct {
	changes []change
}

func (s *session) stage(op string, apply func(ctx context.Context, tx pgx.Tx) error) {
	s.changes = append(s.changes, change{op: op, apply: apply})
}

func (s *session) drain() []change {
	changes := s.changes
	s.changes = nil
	return changes
}

type unitOfWorkFactory struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUnitOfWorkFactory(db database.PgxIface, log *zap.Logger) UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db:  db,
		log: log,
	}
}

func (f *unitOfWorkFactory) New() UnitOfWork {
	s := &session{}
	return &unitOfWork{
		db:        f.db,
		session:   s,
		log:       f.log.With(zap.String("repository", "unit_of_work")),
		movies:    NewMovieRepository(f.db, s, f.log),
		reviews:   NewReviewRepository(f.db, s, f.log),
		actors:    NewActorRepository(f.db, s, f.log),
		genres:    NewGenreRepository(f.db, s, f.log),
		directors: NewDirectorRepository(f.db, s, f.log),
	}
}

type unitOfWork struct {
	db      database.PgxIface
	session *session
	log     *zap.Logger

	movies    MovieRepository
	reviews   ReviewRepository
	actors    ActorRepository
	genres    GenreRepository
	directors DirectorRepository
}

func (u *unitOfWork) Movies() MovieRepository       { return u.movies }
func (u *unitOfWork) Reviews() ReviewRepository     { return u.reviews }
func (u *unitOfWork) Actors() ActorRepository       { return u.actors }
func (u *unitOfWork) Genres() GenreRepository       { return u.genres }
func (u *unitOfWork) Directors() DirectorRepository { return u.directors }

func (u *unitOfWork) Complete(ctx context.Context) error {
	changes := u.session.drain()
	if len(changes) == 0 {
		return nil
	}

	err := runInTx(ctx, u.db, func(tx pgx.Tx) error {
		for _, c := range changes {
			if err := c.apply(ctx, tx); err != nil {
				return fmt.Errorf("%s: %w", c.op, translateError(err))
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConcurrencyConflict) || errors.Is(err, ErrInvalidReference) {
			u.log.Warn("Commit rejected", zap.Error(err), zap.Int("changes", len(changes)))
		} else {
			u.log.Error("Commit failed", zap.Error(err), zap.Int("changes", len(changes)))
		}
		return err
	}

	u.log.Debug("Changes committed", zap.Int("changes", len(changes)))
	return nil
}

func runInTx(ctx context.Context, db database.PgxIface, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
