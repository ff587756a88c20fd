package memory

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
)

type reviewRepository struct {
	uow *unitOfWork
}

func (t *tables) review(id int64) *entity.MovieReview {
	row, ok := t.reviews[id]
	if !ok {
		return nil
	}
	review := row
	review.Movie = t.movie(review.MovieID)
	return &review
}

func (r *reviewRepository) GetAll(ctx context.Context) ([]*entity.MovieReview, error) {
	var reviews []*entity.MovieReview
	r.uow.store.read(func(t *tables) {
		for _, id := range sortedIDs(t.reviews) {
			reviews = append(reviews, t.review(id))
		}
	})
	return reviews, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*entity.MovieReview, error) {
	var review *entity.MovieReview
	r.uow.store.read(func(t *tables) {
		review = t.review(id)
	})
	return review, nil
}

func (r *reviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	r.uow.store.read(func(t *tables) {
		_, ok = t.reviews[id]
	})
	return ok, nil
}

func reviewRow(review *entity.MovieReview) entity.MovieReview {
	row := *review
	row.Movie = nil
	return row
}

func (r *reviewRepository) Add(review *entity.MovieReview) {
	r.uow.stage(func(t *tables) error {
		if _, ok := t.movies[review.MovieID]; !ok {
			return invalidReference("movie", review.MovieID)
		}

		t.seq.review++
		review.ID = t.seq.review
		review.Version = 1
		t.reviews[review.ID] = reviewRow(review)
		return nil
	})
}

func (r *reviewRepository) Update(review *entity.MovieReview) {
	r.uow.stage(func(t *tables) error {
		stored, ok := t.reviews[review.ID]
		if !ok || stored.Version != review.Version {
			return repository.ErrConcurrencyConflict
		}
		if _, ok := t.movies[review.MovieID]; !ok {
			return invalidReference("movie", review.MovieID)
		}

		review.Version++
		t.reviews[review.ID] = reviewRow(review)
		return nil
	})
}

func (r *reviewRepository) Remove(review *entity.MovieReview) {
	r.uow.stage(func(t *tables) error {
		stored, ok := t.reviews[review.ID]
		if !ok || stored.Version != review.Version {
			return repository.ErrConcurrencyConflict
		}
		delete(t.reviews, review.ID)
		return nil
	})
}
