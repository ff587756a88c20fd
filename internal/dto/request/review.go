package request

type ReviewRequest struct {
	MovieID      int64  `json:"movieId" validate:"required,gte=1"`
	ReviewerName string `json:"reviewerName" validate:"required,min=1,max=100"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=10"`
	Comment      string `json:"comment" validate:"max=500"`
}

// ReviewUpdateRequest replaces a review. ID must match the route id.
type ReviewUpdateRequest struct {
	ID           int64  `json:"id" validate:"required"`
	MovieID      int64  `json:"movieId" validate:"required,gte=1"`
	ReviewerName string `json:"reviewerName" validate:"required,min=1,max=100"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=10"`
	Comment      string `json:"comment" validate:"max=500"`
}
