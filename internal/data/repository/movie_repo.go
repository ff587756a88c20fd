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

type MovieRepository interface {
	// GetAll returns every movie with genre and director loaded, ordered by id.
	GetAll(ctx context.Context) ([]*entity.Movie, error)
	// GetByID returns the full aggregate (details, reviews, cast) or nil when absent.
	GetByID(ctx context.Context, id int64) (*entity.Movie, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// Add stages an insert of the movie together with its details and cast.
	Add(movie *entity.Movie)
	// Update stages a versioned update. New details and cast links are inserted.
	Update(movie *entity.Movie)
	// Remove stages a versioned delete. Details, reviews and cast cascade.
	Remove(movie *entity.Movie)
	// Touch stages a version bump of the movie row alone, so changes made
	// under the aggregate (a new review) conflict with concurrent writers.
	Touch(movie *entity.Movie)
}

type movieRepository struct {
	db      database.PgxIface
	session *session
	log     *zap.Logger
}

func NewMovieRepository(db database.PgxIface, s *session, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:      db,
		session: s,
		log:     log.With(zap.String("repository", "movie")),
	}
}

const selectMovies = `
	SELECT m.id, m.version, m.title, m.year, m.duration, m.genre_id, m.director_id,
	       g.id, g.name, d.id, d.name
	FROM movies m
	LEFT JOIN genres g ON g.id = m.genre_id
	LEFT JOIN directors d ON d.id = m.director_id
`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var (
		movie        entity.Movie
		genreID      *int64
		genreName    *string
		directorID   *int64
		directorName *string
	)

	err := row.Scan(
		&movie.ID,
		&movie.Version,
		&movie.Title,
		&movie.Year,
		&movie.Duration,
		&movie.GenreID,
		&movie.DirectorID,
		&genreID,
		&genreName,
		&directorID,
		&directorName,
	)
	if err != nil {
		return nil, err
	}

	if genreID != nil {
		movie.Genre = &entity.Genre{BaseSimple: entity.BaseSimple{ID: *genreID}, Name: *genreName}
	}
	if directorID != nil {
		movie.Director = &entity.Director{BaseSimple: entity.BaseSimple{ID: *directorID}, Name: *directorName}
	}

	return &movie, nil
}

func (r *movieRepository) GetAll(ctx context.Context) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, selectMovies+" ORDER BY m.id")
	if err != nil {
		r.log.Error("Failed to query movies", zap.Error(err))
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies loaded", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, err := scanMovie(r.db.QueryRow(ctx, selectMovies+" WHERE m.id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID", zap.Error(err), zap.Int64("movie_id", id))
		return nil, fmt.Errorf("failed to find movie %d: %w", id, err)
	}

	if movie.Details, err = r.findDetails(ctx, id); err != nil {
		return nil, err
	}
	if movie.Reviews, err = r.findReviews(ctx, movie); err != nil {
		return nil, err
	}
	if movie.Cast, err = r.findCast(ctx, id); err != nil {
		return nil, err
	}

	return movie, nil
}

func (r *movieRepository) findDetails(ctx context.Context, movieID int64) (*entity.MovieDetails, error) {
	query := `
		SELECT id, version, movie_id, synopsis, language, budget
		FROM movie_details
		WHERE movie_id = $1
	`

	details, err := scanMovieDetails(r.db.QueryRow(ctx, query, movieID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie details", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("failed to find details of movie %d: %w", movieID, err)
	}

	return details, nil
}

func (r *movieRepository) findReviews(ctx context.Context, movie *entity.Movie) ([]*entity.MovieReview, error) {
	query := `
		SELECT id, version, movie_id, reviewer_name, rating, comment
		FROM movie_reviews
		WHERE movie_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, movie.ID)
	if err != nil {
		r.log.Error("Failed to query movie reviews", zap.Error(err), zap.Int64("movie_id", movie.ID))
		return nil, fmt.Errorf("failed to get reviews of movie %d: %w", movie.ID, err)
	}
	defer rows.Close()

	reviews := []*entity.MovieReview{}
	for rows.Next() {
		var review entity.MovieReview
		err := rows.Scan(
			&review.ID,
			&review.Version,
			&review.MovieID,
			&review.ReviewerName,
			&review.Rating,
			&review.Comment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		review.Movie = movie
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

func (r *movieRepository) findCast(ctx context.Context, movieID int64) ([]*entity.MovieActor, error) {
	query := `
		SELECT ma.id, ma.movie_id, ma.actor_id, a.id, a.version, a.name
		FROM movie_actors ma
		INNER JOIN actors a ON a.id = ma.actor_id
		WHERE ma.movie_id = $1
		ORDER BY ma.id
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to query movie cast", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("failed to get cast of movie %d: %w", movieID, err)
	}
	defer rows.Close()

	cast := []*entity.MovieActor{}
	for rows.Next() {
		var (
			link  entity.MovieActor
			actor entity.Actor
		)
		err := rows.Scan(
			&link.ID,
			&link.MovieID,
			&link.ActorID,
			&actor.ID,
			&actor.Version,
			&actor.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cast member: %w", err)
		}
		link.Actor = &actor
		cast = append(cast, &link)
	}

	return cast, rows.Err()
}

func (r *movieRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM movies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check movie existence", zap.Error(err), zap.Int64("movie_id", id))
		return false, fmt.Errorf("failed to check movie %d: %w", id, err)
	}
	return exists, nil
}

func (r *movieRepository) Add(movie *entity.Movie) {
	r.session.stage("insert movie", func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO movies (title, year, duration, genre_id, director_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, version
		`

		err := tx.QueryRow(ctx, query,
			movie.Title,
			movie.Year,
			movie.Duration,
			movie.GenreID,
			movie.DirectorID,
		).Scan(&movie.ID, &movie.Version)
		if err != nil {
			return err
		}

		if movie.Details != nil {
			movie.Details.MovieID = movie.ID
			if err := insertMovieDetails(ctx, tx, movie.Details); err != nil {
				return err
			}
		}

		for _, link := range movie.Cast {
			link.MovieID = movie.ID
			if err := insertMovieActor(ctx, tx, link); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *movieRepository) Update(movie *entity.Movie) {
	r.session.stage(fmt.Sprintf("update movie %d", movie.ID), func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE movies
			SET title = $3, year = $4, duration = $5, genre_id = $6, director_id = $7,
			    version = version + 1
			WHERE id = $1 AND version = $2
			RETURNING version
		`

		err := tx.QueryRow(ctx, query,
			movie.ID,
			movie.Version,
			movie.Title,
			movie.Year,
			movie.Duration,
			movie.GenreID,
			movie.DirectorID,
		).Scan(&movie.Version)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrConcurrencyConflict
		}
		if err != nil {
			return err
		}

		if d := movie.Details; d != nil {
			d.MovieID = movie.ID
			if d.ID == 0 {
				err = insertMovieDetails(ctx, tx, d)
			} else {
				err = updateMovieDetails(ctx, tx, d)
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
			if err := insertMovieActor(ctx, tx, link); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *movieRepository) Remove(movie *entity.Movie) {
	r.session.stage(fmt.Sprintf("delete movie %d", movie.ID), func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM movies WHERE id = $1 AND version = $2`, movie.ID, movie.Version)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return ErrConcurrencyConflict
		}
		return nil
	})
}

func (r *movieRepository) Touch(movie *entity.Movie) {
	r.session.stage(fmt.Sprintf("touch movie %d", movie.ID), func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`UPDATE movies SET version = version + 1 WHERE id = $1 AND version = $2 RETURNING version`,
			movie.ID,
			movie.Version,
		).Scan(&movie.Version)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrConcurrencyConflict
		}
		return err
	})
}
