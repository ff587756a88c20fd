package repository

import (
	"context"
	"errors"

	"movie-catalog/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Details and cast links are owned by the movie aggregate and are written
// from inside the movie's staged changes.

func scanMovieDetails(row pgx.Row) (*entity.MovieDetails, error) {
	var (
		details entity.MovieDetails
		budget  pgtype.Numeric
	)

	err := row.Scan(
		&details.ID,
		&details.Version,
		&details.MovieID,
		&details.Synopsis,
		&details.Language,
		&budget,
	)
	if err != nil {
		return nil, err
	}

	details.Budget = numericToDecimal(budget)
	return &details, nil
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func insertMovieDetails(ctx context.Context, tx pgx.Tx, d *entity.MovieDetails) error {
	query := `
		INSERT INTO movie_details (movie_id, synopsis, language, budget)
		VALUES ($1, $2, $3, $4::numeric)
		RETURNING id, version
	`

	return tx.QueryRow(ctx, query,
		d.MovieID,
		d.Synopsis,
		d.Language,
		d.Budget.String(),
	).Scan(&d.ID, &d.Version)
}

func updateMovieDetails(ctx context.Context, tx pgx.Tx, d *entity.MovieDetails) error {
	query := `
		UPDATE movie_details
		SET synopsis = $3, language = $4, budget = $5::numeric, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`

	err := tx.QueryRow(ctx, query,
		d.ID,
		d.Version,
		d.Synopsis,
		d.Language,
		d.Budget.String(),
	).Scan(&d.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrConcurrencyConflict
	}
	return err
}

func insertMovieActor(ctx context.Context, tx pgx.Tx, link *entity.MovieActor) error {
	query := `
		INSERT INTO movie_actors (movie_id, actor_id)
		VALUES ($1, $2)
		RETURNING id
	`

	return tx.QueryRow(ctx, query, link.MovieID, link.ActorID).Scan(&link.ID)
}
