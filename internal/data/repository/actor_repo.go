package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActorRepository interface {
	GetAll(ctx context.Context) ([]*entity.Actor, error)
	GetByID(ctx context.Context, id int64) (*entity.Actor, error)
	Exists(ctx context.Context, id int64) (bool, error)

	Add(actor *entity.Actor)
	Update(actor *entity.Actor)
	// Remove stages a versioned delete. Cast links of the actor cascade.
	Remove(actor *entity.Actor)
}

type actorRepository struct {
	db      database.PgxIface
	session *session
	log     *zap.Logger
}

func NewActorRepository(db database.PgxIface, s *session, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:      db,
		session: s,
		log:     log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) GetAll(ctx context.Context) ([]*entity.Actor, error) {
	rows, err := r.db.Query(ctx, `SELECT id, version, name FROM actors ORDER BY id`)
	if err != nil {
		r.log.Error("Failed to query actors", zap.Error(err))
		return nil, fmt.Errorf("failed to get actors: %w", err)
	}
	defer rows.Close()

	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		if err := rows.Scan(&actor.ID, &actor.Version, &actor.Name); err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan actor: %w", err)
		}
		actors = append(actors, &actor)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return actors, nil
}

func (r *actorRepository) GetByID(ctx context.Context, id int64) (*entity.Actor, error) {
	var actor entity.Actor
	err := r.db.QueryRow(ctx, `SELECT id, version, name FROM actors WHERE id = $1`, id).Scan(
		&actor.ID,
		&actor.Version,
		&actor.Name,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID", zap.Error(err), zap.Int64("actor_id", id))
		return nil, fmt.Errorf("failed to find actor %d: %w", id, err)
	}

	return &actor, nil
}

func (r *actorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM actors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check actor existence", zap.Error(err), zap.Int64("actor_id", id))
		return false, fmt.Errorf("failed to check actor %d: %w", id, err)
	}
	return exists, nil
}

func (r *actorRepository) Add(actor *entity.Actor) {
	r.session.stage("insert actor", func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`INSERT INTO actors (name) VALUES ($1) RETURNING id, version`,
			actor.Name,
		).Scan(&actor.ID, &actor.Version)
	})
}

func (r *actorRepository) Update(actor *entity.Actor) {
	r.session.stage(fmt.Sprintf("update actor %d", actor.ID), func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE actors
			SET name = $3, version = version + 1
			WHERE id = $1 AND version = $2
			RETURNING version
		`

		err := tx.QueryRow(ctx, query, actor.ID, actor.Version, actor.Name).Scan(&actor.Version)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrConcurrencyConflict
		}
		return err
	})
}

func (r *actorRepository) Remove(actor *entity.Actor) {
	r.session.stage(fmt.Sprintf("delete actor %d", actor.ID), func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM actors WHERE id = $1 AND version = $2`, actor.ID, actor.Version)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return ErrConcurrencyConflict
		}
		return nil
	})
}
