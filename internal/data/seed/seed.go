// Package seed fills an empty catalog with sample data for local development.
package seed

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type sampleMovie struct {
	title    string
	year     int
	duration int
	genre    string
	director string
	synopsis string
	budget   int64
	cast     []string
}

var (
	genres    = []string{"Sci-Fi", "Romance", "Drama", "Thriller", "Crime", "Documentary"}
	directors = []string{"Christopher Nolan", "James Cameron", "David Fincher", "Frank Darabont", "Robert Zemeckis", "Darren Aronofsky", "Sofia Coppola", "Quentin Tarantino"}
	actors    = []string{"Leonardo DiCaprio", "Kate Winslet", "Brad Pitt", "Morgan Freeman", "Tom Hanks", "Natalie Portman", "Scarlett Johansson", "Samuel L. Jackson"}

	movies = []sampleMovie{
		{"Inception", 2010, 148, "Sci-Fi", "Christopher Nolan", "A thief steals secrets by entering the dreams of his targets.", 160000000, []string{"Leonardo DiCaprio"}},
		{"Titanic", 1997, 195, "Romance", "James Cameron", "Two passengers from different classes fall in love aboard a doomed liner.", 200000000, []string{"Leonardo DiCaprio", "Kate Winslet"}},
		{"Fight Club", 1999, 139, "Drama", "David Fincher", "An office worker and a soap salesman start an underground fight club.", 63000000, []string{"Brad Pitt"}},
		{"The Shawshank Redemption", 1994, 142, "Drama", "Frank Darabont", "Two prisoners build a friendship over decades behind bars.", 25000000, []string{"Morgan Freeman"}},
		{"Forrest Gump", 1994, 142, "Drama", "Robert Zemeckis", "A kind man drifts through decades of American history.", 55000000, []string{"Tom Hanks"}},
		{"Black Swan", 2010, 108, "Thriller", "Darren Aronofsky", "A ballerina loses her grip on reality while preparing a lead role.", 13000000, []string{"Natalie Portman"}},
		{"Lost in Translation", 2003, 102, "Drama", "Sofia Coppola", "Two strangers form a bond during a stay in Tokyo.", 4000000, []string{"Scarlett Johansson"}},
		{"Pulp Fiction", 1994, 154, "Crime", "Quentin Tarantino", "Interlocking stories of crime in Los Angeles.", 8000000, []string{"Samuel L. Jackson"}},
	}
)

// Run inserts the sample catalog when no movie exists yet.
// Reference data is committed first so movies can point at generated ids.
func Run(ctx context.Context, factory repository.UnitOfWorkFactory, log *zap.Logger) error {
	existing, err := factory.New().Movies().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("check existing movies: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Catalog already seeded", zap.Int("movies", len(existing)))
		return nil
	}

	uow := factory.New()

	genresByName := make(map[string]*entity.Genre, len(genres))
	for _, name := range genres {
		g := &entity.Genre{Name: name}
		genresByName[name] = g
		uow.Genres().Add(g)
	}

	directorsByName := make(map[string]*entity.Director, len(directors))
	for _, name := range directors {
		d := &entity.Director{Name: name}
		directorsByName[name] = d
		uow.Directors().Add(d)
	}

	actorsByName := make(map[string]*entity.Actor, len(actors))
	for _, name := range actors {
		a := &entity.Actor{Name: name}
		actorsByName[name] = a
		uow.Actors().Add(a)
	}

	if err := uow.Complete(ctx); err != nil {
		return fmt.Errorf("seed reference data: %w", err)
	}

	uow = factory.New()
	for _, sample := range movies {
		movie := &entity.Movie{
			Title:      sample.title,
			Year:       sample.year,
			Duration:   sample.duration,
			GenreID:    genresByName[sample.genre].ID,
			DirectorID: directorsByName[sample.director].ID,
			Details: &entity.MovieDetails{
				Synopsis: sample.synopsis,
				Language: "English",
				Budget:   decimal.NewFromInt(sample.budget),
			},
		}
		for _, name := range sample.cast {
			movie.Cast = append(movie.Cast, &entity.MovieActor{ActorID: actorsByName[name].ID})
		}
		uow.Movies().Add(movie)
	}

	if err := uow.Complete(ctx); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}

	log.Info("Catalog seeded",
		zap.Int("genres", len(genres)),
		zap.Int("directors", len(directors)),
		zap.Int("actors", len(actors)),
		zap.Int("movies", len(movies)),
	)
	return nil
}
