package usecase

import (
	"strings"

	"movie-catalog/internal/data/entity"

	"github.com/shopspring/decimal"
)

const (
	maxReviewsPerMovie = 50
	maxDocumentaryCast = 10
	documentaryGenre   = "Documentary"
)

var maxDocumentaryBudget = decimal.NewFromInt(10_000_000)

func isDocumentary(genreName string) bool {
	return strings.EqualFold(genreName, documentaryGenre)
}

// checkBudget enforces the budget rules for a movie of the given genre.
func checkBudget(budget decimal.Decimal, genreName string) error {
	if budget.IsNegative() {
		return invalid("budget", "budget cannot be negative")
	}
	if isDocumentary(genreName) && budget.GreaterThan(maxDocumentaryBudget) {
		return invalid("budget", "documentary budget cannot exceed %s", maxDocumentaryBudget.String())
	}
	return nil
}

// checkCanAddReview requires movie to be loaded with its reviews.
func checkCanAddReview(movie *entity.Movie) error {
	if len(movie.Reviews) >= maxReviewsPerMovie {
		return conflict("movie %d already has the maximum of %d reviews", movie.ID, maxReviewsPerMovie)
	}
	return nil
}

// checkCanAddActor requires movie to be loaded with its cast.
func checkCanAddActor(movie *entity.Movie, actorID int64) error {
	if movie.HasActor(actorID) {
		return conflict("actor %d is already assigned to movie %d", actorID, movie.ID)
	}
	if isDocumentary(movie.GenreName()) && len(movie.Cast) >= maxDocumentaryCast {
		return conflict("documentary movie %d cannot have more than %d actors", movie.ID, maxDocumentaryCast)
	}
	return nil
}
