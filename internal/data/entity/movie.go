package entity

// Movie is the aggregate root for its details, reviews and cast links.
type Movie struct {
	Base
	Title      string `db:"title"`
	Year       int    `db:"year"`
	Duration   int    `db:"duration"`
	GenreID    int64  `db:"genre_id"`
	DirectorID int64  `db:"director_id"`

	// Navigation, populated by the repository that loaded the movie
	Genre    *Genre
	Director *Director
	Details  *MovieDetails
	Reviews  []*MovieReview
	Cast     []*MovieActor
}

// HasActor reports whether the cast already links actorID.
func (m *Movie) HasActor(actorID int64) bool {
	for _, link := range m.Cast {
		if link.ActorID == actorID {
			return true
		}
	}
	return false
}

// GenreName returns the genre display name, or "" when the genre is not loaded.
func (m *Movie) GenreName() string {
	if m.Genre == nil {
		return ""
	}
	return m.Genre.Name
}

// DirectorName returns the director display name, or "" when the director is not loaded.
func (m *Movie) DirectorName() string {
	if m.Director == nil {
		return ""
	}
	return m.Director.Name
}
