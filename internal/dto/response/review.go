package response

import "movie-catalog/internal/data/entity"

type ReviewResponse struct {
	ID            int64  `json:"id"`
	MovieID       int64  `json:"movieId"`
	ReviewerName  string `json:"reviewerName"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	MovieTitle    string `json:"movieTitle"`
	MovieYear     int    `json:"movieYear"`
	MovieGenre    string `json:"movieGenre"`
	MovieDuration int    `json:"movieDuration"`
}

// Helper converter. Movie fields stay zero when the movie is not loaded.
func ReviewToResponse(review *entity.MovieReview) ReviewResponse {
	resp := ReviewResponse{
		ID:           review.ID,
		MovieID:      review.MovieID,
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
	}

	if m := review.Movie; m != nil {
		resp.MovieTitle = m.Title
		resp.MovieYear = m.Year
		resp.MovieGenre = m.GenreName()
		resp.MovieDuration = m.Duration
	}

	return resp
}
