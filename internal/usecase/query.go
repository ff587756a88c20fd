package usecase

import (
	"cmp"
	"slices"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"
)

// paginate cuts one page out of items and projects it. items must already be
// filtered and ordered; the total is counted before slicing.
func paginate[E, R any](items []E, req request.PaginatedRequest, project func(E) R) *response.PaginatedResponse[R] {
	p := req.Normalize()
	start, end := utils.PageBounds(len(items), p.Page, p.PageSize)

	data := make([]R, 0, end-start)
	for _, item := range items[start:end] {
		data = append(data, project(item))
	}

	return response.NewPaginatedResponse(data, p.Page, p.PageSize, int64(len(items)))
}

// sortByID orders items by primary key so equal inputs always page the same way.
func sortByID[E any](items []E, id func(E) int64) {
	slices.SortStableFunc(items, func(a, b E) int {
		return cmp.Compare(id(a), id(b))
	})
}

func filterMovies(movies []*entity.Movie, f request.MovieFilter) []*entity.Movie {
	filtered := make([]*entity.Movie, 0, len(movies))
	for _, m := range movies {
		if matchesMovie(m, f) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func matchesMovie(m *entity.Movie, f request.MovieFilter) bool {
	if f.GenreID != nil && m.GenreID != *f.GenreID {
		return false
	}
	if f.Year != nil && m.Year != *f.Year {
		return false
	}
	if f.DirectorID != nil && m.DirectorID != *f.DirectorID {
		return false
	}
	return true
}

func reviewsOfMovie(reviews []*entity.MovieReview, movieID int64) []*entity.MovieReview {
	filtered := make([]*entity.MovieReview, 0)
	for _, r := range reviews {
		if r.MovieID == movieID {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func movieID(m *entity.Movie) int64        { return m.ID }
func reviewID(r *entity.MovieReview) int64 { return r.ID }
func actorID(a *entity.Actor) int64        { return a.ID }
