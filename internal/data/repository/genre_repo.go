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

type GenreRepository interface {
	GetAll(ctx context.Context) ([]*entity.Genre, error)
	GetByID(ctx context.Context, id int64) (*entity.Genre, error)
	Exists(ctx context.Context, id int64) (bool, error)

	Add(genre *entity.Genre)
}

type genreRepository struct {
	db      database.PgxIface
	session *session
	log     *zap.Logger
}

func NewGenreRepository(db database.PgxIface, s *session, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:      db,
		session: s,
		log:     log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) GetAll(ctx context.Context) ([]*entity.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		r.log.Error("Failed to query genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, &genre)
	}

	return genres, rows.Err()
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*entity.Genre, error) {
	var genre entity.Genre
	err := r.db.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).Scan(
		&genre.ID,
		&genre.Name,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return nil, fmt.Errorf("find genre by id: %w", err)
	}

	return &genre, nil
}

func (r *genreRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM genres WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check genre %d: %w", id, err)
	}
	return exists, nil
}

func (r *genreRepository) Add(genre *entity.Genre) {
	r.session.stage("insert genre", func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, `INSERT INTO genres (name) VALUES ($1) RETURNING id`, genre.Name).Scan(&genre.ID)
	})
}
