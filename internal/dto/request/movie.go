package request

import "github.com/shopspring/decimal"

// MovieFilter holds the optional equality filters of the movie list.
// A nil field imposes no constraint; set fields are AND-combined.
type MovieFilter struct {
	GenreID    *int64
	Year       *int
	DirectorID *int64
}

type MovieDetailsRequest struct {
	Synopsis string          `json:"synopsis" validate:"max=2000"`
	Language string          `json:"language" validate:"max=50"`
	Budget   decimal.Decimal `json:"budget"`
}

type MovieRequest struct {
	Title      string               `json:"title" validate:"required,min=1,max=100"`
	Year       int                  `json:"year" validate:"required,gte=1888,lte=2100"`
	Duration   int                  `json:"duration" validate:"required,gte=1,lte=600"`
	GenreID    int64                `json:"genreId" validate:"required,gte=1"`
	DirectorID int64                `json:"directorId" validate:"required,gte=1"`
	Details    *MovieDetailsRequest `json:"details,omitempty"`
}

// MovieUpdateRequest replaces a movie. ID must match the route id.
type MovieUpdateRequest struct {
	ID         int64  `json:"id" validate:"required"`
	Title      string `json:"title" validate:"required,min=1,max=100"`
	Year       int    `json:"year" validate:"required,gte=1888,lte=2100"`
	Duration   int    `json:"duration" validate:"required,gte=1,lte=600"`
	GenreID    int64  `json:"genreId" validate:"required,gte=1"`
	DirectorID int64  `json:"directorId" validate:"required,gte=1"`
}

// MoviePatchRequest carries only the fields to change.
type MoviePatchRequest struct {
	Title      *string          `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Year       *int             `json:"year,omitempty" validate:"omitempty,gte=1888,lte=2100"`
	Duration   *int             `json:"duration,omitempty" validate:"omitempty,gte=1,lte=600"`
	GenreID    *int64           `json:"genreId,omitempty" validate:"omitempty,gte=1"`
	DirectorID *int64           `json:"directorId,omitempty" validate:"omitempty,gte=1"`
	Synopsis   *string          `json:"synopsis,omitempty" validate:"omitempty,max=2000"`
	Language   *string          `json:"language,omitempty" validate:"omitempty,max=50"`
	Budget     *decimal.Decimal `json:"budget,omitempty"`
}

// HasDetails reports whether the patch touches the details record.
func (p *MoviePatchRequest) HasDetails() bool {
	return p.Synopsis != nil || p.Language != nil || p.Budget != nil
}
