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

type ReviewRepository interface {
	// GetAll returns every review with its movie (and the movie's genre) loaded, ordered by id.
	GetAll(ctx context.Context) ([]*entity.MovieReview, error)
	GetByID(ctx context.Context, id int64) (*entity.MovieReview, error)
	Exists(ctx context.Context, id int64) (bool, error)

	Add(review *entity.MovieReview)
	Update(review *entity.MovieReview)
	Remove(review *entity.MovieReview)
}

type reviewRepository struct {
	db      database.PgxIface
	session *session
	log     *zap.Logger
}

func NewReviewRepository(db database.PgxIface, s *session, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:      db,
		session: s,
		log:     log.With(zap.String("repository", "review")),
	}
}

const selectReviews = `
	SELECT r.id, r.version, r.movie_id, r.reviewer_name, r.rating, r.comment,
	       m.id, m.version, m.title, m.year, m.duration, m.genre_id, m.director_id,
	       g.id, g.name
	FROM movie_reviews r
	INNER JOIN movies m ON m.id = r.movie_id
	LEFT JOIN genres g ON g.id = m.genre_id
`

func scanReview(row pgx.Row) (*entity.MovieReview, error) {
	var (
		review    entity.MovieReview
		movie     entity.Movie
		genreID   *int64
		genreName *string
	)

	err := row.Scan(
		&review.ID,
		&review.Version,
		&review.MovieID,
		&review.ReviewerName,
		&review.Rating,
		&review.Comment,
		&movie.ID,
		&movie.Version,
		&movie.Title,
		&movie.Year,
		&movie.Duration,
		&movie.GenreID,
		&movie.DirectorID,
		&genreID,
		&genreName,
	)
	if err != nil {
		return nil, err
	}

	if genreID != nil {
		movie.Genre = &entity.Genre{BaseSimple: entity.BaseSimple{ID: *genreID}, Name: *genreName}
	}
	review.Movie = &movie

	return &review, nil
}

func (r *reviewRepository) GetAll(ctx context.Context) ([]*entity.MovieReview, error) {
	rows, err := r.db.Query(ctx, selectReviews+" ORDER BY r.id")
	if err != nil {
		r.log.Error("Failed to query reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.MovieReview
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*entity.MovieReview, error) {
	review, err := scanReview(r.db.QueryRow(ctx, selectReviews+" WHERE r.id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID", zap.Error(err), zap.Int64("review_id", id))
		return nil, fmt.Errorf("failed to find review %d: %w", id, err)
	}

	return review, nil
}

func (r *reviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM movie_reviews WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check review existence", zap.Error(err), zap.Int64("review_id", id))
		return false, fmt.Errorf("failed to check review %d: %w", id, err)
	}
	return exists, nil
}

func (r *reviewRepository) Add(review *entity.MovieReview) {
	r.session.stage("insert review", func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO movie_reviews (movie_id, reviewer_name, rating, comment)
			VALUES ($1, $2, $3, $4)
			RETURNING id, version
		`

		return tx.QueryRow(ctx, query,
			review.MovieID,
			review.ReviewerName,
			review.Rating,
			review.Comment,
		).Scan(&review.ID, &review.Version)
	})
}

func (r *reviewRepository) Update(review *entity.MovieReview) {
	r.session.stage(fmt.Sprintf("update review %d", review.ID), func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE movie_reviews
			SET movie_id = $3, reviewer_name = $4, rating = $5, comment = $6,
			    version = version + 1
			WHERE id = $1 AND version = $2
			RETURNING version
		`

		err := tx.QueryRow(ctx, query,
			review.ID,
			review.Version,
			review.MovieID,
			review.ReviewerName,
			review.Rating,
			review.Comment,
		).Scan(&review.Version)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrConcurrencyConflict
		}
		return err
	})
}

func (r *reviewRepository) Remove(review *entity.MovieReview) {
	r.session.stage(fmt.Sprintf("delete review %d", review.ID), func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM movie_reviews WHERE id = $1 AND version = $2`, review.ID, review.Version)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return ErrConcurrencyConflict
		}
		return nil
	})
}
