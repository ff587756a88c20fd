package response

import "movie-catalog/internal/data/entity"

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DirectorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Helper converters
func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func DirectorToResponse(director *entity.Director) DirectorResponse {
	return DirectorResponse{
		ID:   director.ID,
		Name: director.Name,
	}
}
