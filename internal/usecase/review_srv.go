package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	GetReviews(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, id int64, req *request.ReviewUpdateRequest) error
	DeleteReview(ctx context.Context, id int64) error
}

type reviewService struct {
	uow repository.UnitOfWorkFactory
	log *zap.Logger
}

func NewReviewService(uow repository.UnitOfWorkFactory, log *zap.Logger) ReviewService {
	return &reviewService{
		uow: uow,
		log: log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviews(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.uow.New().Reviews().GetAll(ctx)
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err))
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	sortByID(reviews, reviewID)
	return paginate(reviews, req, response.ReviewToResponse), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error) {
	review, err := s.uow.New().Reviews().GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get review by ID", zap.Error(err), zap.Int64("review_id", id))
		return nil, fmt.Errorf("get review by id: %w", err)
	}
	if review == nil {
		return nil, notFound("review", id)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	uow := s.uow.New()

	movie, err := s.reviewTarget(ctx, uow, req.MovieID)
	if err != nil {
		return nil, err
	}
	if err := checkCanAddReview(movie); err != nil {
		s.log.Warn("Review rejected", zap.Error(err), zap.Int64("movie_id", movie.ID))
		return nil, err
	}

	review := &entity.MovieReview{
		MovieID:      movie.ID,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Movie:        movie,
	}

	uow.Movies().Touch(movie)
	uow.Reviews().Add(review)
	if err := uow.Complete(ctx); err != nil {
		s.log.Warn("Failed to create review", zap.Error(err), zap.Int64("movie_id", movie.ID))
		return nil, fmt.Errorf("create review: %w", reviewCommitError(ctx, uow, err, 0, movie.ID))
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id int64, req *request.ReviewUpdateRequest) error {
	if err := checkRouteID(id, req.ID); err != nil {
		return err
	}
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update review validation failed", zap.Error(err), zap.Int64("review_id", id))
		return err
	}

	uow := s.uow.New()

	review, err := uow.Reviews().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return notFound("review", id)
	}

	// Moving a review to another movie counts against that movie's limit
	if req.MovieID != review.MovieID {
		movie, err := s.reviewTarget(ctx, uow, req.MovieID)
		if err != nil {
			return err
		}
		if err := checkCanAddReview(movie); err != nil {
			return err
		}
		review.Movie = movie
		uow.Movies().Touch(movie)
	}

	review.MovieID = req.MovieID
	review.ReviewerName = req.ReviewerName
	review.Rating = req.Rating
	review.Comment = req.Comment

	uow.Reviews().Update(review)
	if err := uow.Complete(ctx); err != nil {
		s.log.Warn("Failed to update review", zap.Error(err), zap.Int64("review_id", id))
		return fmt.Errorf("update review: %w", reviewCommitError(ctx, uow, err, id, req.MovieID))
	}

	s.log.Info("Review updated", zap.Int64("review_id", id))
	return nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	uow := s.uow.New()

	review, err := uow.Reviews().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return notFound("review", id)
	}

	uow.Reviews().Remove(review)
	if err := uow.Complete(ctx); err != nil {
		s.log.Warn("Failed to delete review", zap.Error(err), zap.Int64("review_id", id))
		return fmt.Errorf("delete review: %w", commitError(err, "review", id, reviewExists(ctx, uow)))
	}

	s.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}

// reviewTarget loads the movie a review is written for. A missing movie is a
// validation failure of the request, not a missing route resource.
func (s *reviewService) reviewTarget(ctx context.Context, uow repository.UnitOfWork, movieID int64) (*entity.Movie, error) {
	movie, err := uow.Movies().GetByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, invalid("movieId", "movie %d does not exist", movieID)
	}
	return movie, nil
}

func reviewExists(ctx context.Context, uow repository.UnitOfWork) func(id int64) (bool, error) {
	return func(id int64) (bool, error) {
		return uow.Reviews().Exists(ctx, id)
	}
}

// reviewCommitError classifies a failed review commit. A vanished review is
// not found; a vanished movie is an invalid movieId. reviewID is 0 on create.
func reviewCommitError(ctx context.Context, uow repository.UnitOfWork, err error, reviewID, movieID int64) error {
	if reviewID != 0 {
		err = commitError(err, "review", reviewID, reviewExists(ctx, uow))
	} else {
		err = commitError(err, "review", 0, nil)
	}
	if !errors.Is(err, repository.ErrConcurrencyConflict) {
		return err
	}

	found, existsErr := uow.Movies().Exists(ctx, movieID)
	if existsErr != nil {
		return errors.Join(err, existsErr)
	}
	if !found {
		return invalid("movieId", "movie %d does not exist", movieID)
	}
	return err
}
