package response

import (
	"movie-catalog/internal/data/entity"

	"github.com/shopspring/decimal"
)

type MovieResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Year         int    `json:"year"`
	Duration     int    `json:"duration"`
	GenreID      int64  `json:"genreId"`
	GenreName    string `json:"genreName"`
	DirectorID   int64  `json:"directorId"`
	DirectorName string `json:"directorName"`
}

type MovieDetailsResponse struct {
	Synopsis string          `json:"synopsis"`
	Language string          `json:"language"`
	Budget   decimal.Decimal `json:"budget"`
}

// MovieDetailResponse is the aggregated view of one movie. Details is null
// when the movie has no details record; Reviews and Actors are never null.
type MovieDetailResponse struct {
	MovieResponse
	Details *MovieDetailsResponse `json:"details"`
	Reviews []ReviewResponse      `json:"reviews"`
	Actors  []ActorResponse       `json:"actors"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:           movie.ID,
		Title:        movie.Title,
		Year:         movie.Year,
		Duration:     movie.Duration,
		GenreID:      movie.GenreID,
		GenreName:    movie.GenreName(),
		DirectorID:   movie.DirectorID,
		DirectorName: movie.DirectorName(),
	}
}

func MovieToDetailResponse(movie *entity.Movie) MovieDetailResponse {
	detail := MovieDetailResponse{
		MovieResponse: MovieToResponse(movie),
		Reviews:       make([]ReviewResponse, 0, len(movie.Reviews)),
		Actors:        make([]ActorResponse, 0, len(movie.Cast)),
	}

	if d := movie.Details; d != nil {
		detail.Details = &MovieDetailsResponse{
			Synopsis: d.Synopsis,
			Language: d.Language,
			Budget:   d.Budget,
		}
	}

	for _, review := range movie.Reviews {
		detail.Reviews = append(detail.Reviews, ReviewToResponse(review))
	}

	for _, link := range movie.Cast {
		if link.Actor == nil {
			continue
		}
		detail.Actors = append(detail.Actors, ActorToResponse(link.Actor))
	}

	return detail
}
