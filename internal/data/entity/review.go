package entity

type MovieReview struct {
	Base
	MovieID      int64  `db:"movie_id"`
	ReviewerName string `db:"reviewer_name"`
	Rating       int    `db:"rating"` // 1-10
	Comment      string `db:"comment"`

	Movie *Movie
}
