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

type DirectorRepository interface {
	GetAll(ctx context.Context) ([]*entity.Director, error)
	GetByID(ctx context.Context, id int64) (*entity.Director, error)
	Exists(ctx context.Context, id int64) (bool, error)

	Add(director *entity.Director)
}

type directorRepository struct {
	db      database.PgxIface
	session *session
	log     *zap.Logger
}

func NewDirectorRepository(db database.PgxIface, s *session, log *zap.Logger) DirectorRepository {
	return &directorRepository{
		db:      db,
		session: s,
		log:     log.With(zap.String("repository", "director")),
	}
}

func (r *directorRepository) GetAll(ctx context.Context) ([]*entity.Director, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM directors ORDER BY id`)
	if err != nil {
		r.log.Error("Failed to query directors", zap.Error(err))
		return nil, fmt.Errorf("get directors: %w", err)
	}
	defer rows.Close()

	var directors []*entity.Director
	for rows.Next() {
		var director entity.Director
		if err := rows.Scan(&director.ID, &director.Name); err != nil {
			return nil, fmt.Errorf("scan director: %w", err)
		}
		directors = append(directors, &director)
	}

	return directors, rows.Err()
}

func (r *directorRepository) GetByID(ctx context.Context, id int64) (*entity.Director, error) {
	var director entity.Director
	err := r.db.QueryRow(ctx, `SELECT id, name FROM directors WHERE id = $1`, id).Scan(
		&director.ID,
		&director.Name,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.Int64("director_id", id),
		)
		return nil, fmt.Errorf("find director by id: %w", err)
	}

	return &director, nil
}

func (r *directorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM directors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check director %d: %w", id, err)
	}
	return exists, nil
}

func (r *directorRepository) Add(director *entity.Director) {
	r.session.stage("insert director", func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, `INSERT INTO directors (name) VALUES ($1) RETURNING id`, director.Name).Scan(&director.ID)
	})
}
