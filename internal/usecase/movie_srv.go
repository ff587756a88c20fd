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

type MovieService interface {
	GetMovies(ctx context.Context, req request.PaginatedRequest, filter request.MovieFilter) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	GetMovieDetails(ctx context.Context, id int64) (*response.MovieDetailResponse, error)
	GetMovieReviews(ctx context.Context, id int64, req request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, id int64, req *request.MovieUpdateRequest) error
	PatchMovie(ctx context.Context, id int64, req *request.MoviePatchRequest) error
	DeleteMovie(ctx context.Context, id int64) error
	AddActorToMovie(ctx context.Context, movieID, actorID int64) error
}

type movieService struct {
	uow repository.UnitOfWorkFactory
	log *zap.Logger
}

func NewMovieService(uow repository.UnitOfWorkFactory, log *zap.Logger) MovieService {
	return &movieService{
		uow: uow,
		log: log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req request.PaginatedRequest, filter request.MovieFilter) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.uow.New().Movies().GetAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	filtered := filterMovies(movies, filter)
	sortByID(filtered, movieID)
	page := paginate(filtered, req, response.MovieToResponse)

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(page.Data)),
		zap.Int64("total", page.Meta.TotalItems),
		zap.Int("page", page.Meta.CurrentPage),
		zap.Int("page_size", page.Meta.PageSize),
	)

	return page, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.uow.New().Movies().GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID", zap.Error(err), zap.Int64("movie_id", id))
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie", id)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovieDetails(ctx context.Context, id int64) (*response.MovieDetailResponse, error) {
	movie, err := s.uow.New().Movies().GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie details", zap.Error(err), zap.Int64("movie_id", id))
		return nil, fmt.Errorf("get movie details: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie", id)
	}

	detail := response.MovieToDetailResponse(movie)
	return &detail, nil
}

// GetMovieReviews pages the reviews of a movie. An unknown movie simply has no reviews.
func (s *movieService) GetMovieReviews(ctx context.Context, id int64, req request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.uow.New().Reviews().GetAll(ctx)
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err), zap.Int64("movie_id", id))
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	filtered := reviewsOfMovie(reviews, id)
	sortByID(filtered, reviewID)

	return paginate(filtered, req, response.ReviewToResponse), nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	uow := s.uow.New()

	genre, err := lookupGenre(ctx, uow, req.GenreID)
	if err != nil {
		return nil, err
	}
	director, err := lookupDirector(ctx, uow, req.DirectorID)
	if err != nil {
		return nil, err
	}

	movie := &entity.Movie{
		Title:      req.Title,
		Year:       req.Year,
		Duration:   req.Duration,
		GenreID:    genre.ID,
		DirectorID: director.ID,
		Genre:      genre,
		Director:   director,
	}

	if d := req.Details; d != nil {
		if err := checkBudget(d.Budget, genre.Name); err != nil {
			return nil, err
		}
		movie.Details = &entity.MovieDetails{
			Synopsis: d.Synopsis,
			Language: d.Language,
			Budget:   d.Budget,
		}
	}

	uow.Movies().Add(movie)
	if err := uow.Complete(ctx); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", commitError(err, "movie", 0, nil))
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieUpdateRequest) error {
	if err := checkRouteID(id, req.ID); err != nil {
		return err
	}
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err), zap.Int64("movie_id", id))
		return err
	}

	uow := s.uow.New()

	movie, err := uow.Movies().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return notFound("movie", id)
	}

	genre, err := lookupGenre(ctx, uow, req.GenreID)
	if err != nil {
		return err
	}
	director, err := lookupDirector(ctx, uow, req.DirectorID)
	if err != nil {
		return err
	}

	movie.Title = req.Title
	movie.Year = req.Year
	movie.Duration = req.Duration
	movie.GenreID, movie.Genre = genre.ID, genre
	movie.DirectorID, movie.Director = director.ID, director

	if movie.Details != nil {
		if err := checkBudget(movie.Details.Budget, genre.Name); err != nil {
			return err
		}
	}

	uow.Movies().Update(movie)
	if err := uow.Complete(ctx); err != nil {
		s.log.Warn("Failed to update movie", zap.Error(err), zap.Int64("movie_id", id))
		return fmt.Errorf("update movie: %w", commitError(err, "movie", id, movieExists(ctx, uow)))
	}

	s.log.Info("Movie updated", zap.Int64("movie_id", id))
	return nil
}

// PatchMovie applies only the fields present in req. Detail fields on a movie
// without details first create an empty details record.
func (s *movieService) PatchMovie(ctx context.Context, id int64, req *request.MoviePatchRequest) error {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Patch movie validation failed", zap.Error(err), zap.Int64("movie_id", id))
		return err
	}

	uow := s.uow.New()

	movie, err := uow.Movies().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return notFound("movie", id)
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Year != nil {
		movie.Year = *req.Year
	}
	if req.Duration != nil {
		movie.Duration = *req.Duration
	}
	if req.GenreID != nil {
		genre, err := lookupGenre(ctx, uow, *req.GenreID)
		if err != nil {
			return err
		}
		movie.GenreID, movie.Genre = genre.ID, genre
	}
	if req.DirectorID != nil {
		director, err := lookupDirector(ctx, uow, *req.DirectorID)
		if err != nil {
			return err
		}
		movie.DirectorID, movie.Director = director.ID, director
	}

	if req.HasDetails() {
		if movie.Details == nil {
			movie.Details = &entity.MovieDetails{MovieID: movie.ID}
		}
		if req.Synopsis != nil {
			movie.Details.Synopsis = *req.Synopsis
		}
		if req.Language != nil {
			movie.Details.Language = *req.Language
		}
		if req.Budget != nil {
			movie.Details.Budget = *req.Budget
		}
	}

	if movie.Details != nil {
		if err := checkBudget(movie.Details.Budget, movie.GenreName()); err != nil {
			return err
		}
	}

	uow.Movies().Update(movie)
	if err := uow.Complete(ctx); err != nil {
		s.log.Warn("Failed to patch movie", zap.Error(err), zap.Int64("movie_id", id))
		return fmt.Errorf("patch movie: %w", commitError(err, "movie", id, movieExists(ctx, uow)))
	}

	s.log.Info("Movie patched", zap.Int64("movie_id", id))
	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	uow := s.uow.New()

	movie, err := uow.Movies().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return notFound("movie", id)
	}

	uow.Movies().Remove(movie)
	if err := uow.Complete(ctx); err != nil {
		s.log.Warn("Failed to delete movie", zap.Error(err), zap.Int64("movie_id", id))
		return fmt.Errorf("delete movie: %w", commitError(err, "movie", id, movieExists(ctx, uow)))
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", id),
		zap.Int("reviews", len(movie.Reviews)),
		zap.Int("cast", len(movie.Cast)),
	)
	return nil
}

// AddActorToMovie links an existing actor to an existing movie. Linking the
// same pair twice is a conflict.
func (s *movieService) AddActorToMovie(ctx context.Context, movieID, actorID int64) error {
	uow := s.uow.New()

	movie, err := uow.Movies().GetByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return notFound("movie", movieID)
	}

	exists, err := uow.Actors().Exists(ctx, actorID)
	if err != nil {
		return fmt.Errorf("check actor: %w", err)
	}
	if !exists {
		return notFound("actor", actorID)
	}

	if err := checkCanAddActor(movie, actorID); err != nil {
		s.log.Warn("Actor assignment rejected",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.Int64("actor_id", actorID),
		)
		return err
	}

	movie.Cast = append(movie.Cast, &entity.MovieActor{MovieID: movie.ID, ActorID: actorID})

	uow.Movies().Update(movie)
	if err := uow.Complete(ctx); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return notFound("actor", actorID)
		}
		return fmt.Errorf("add actor to movie: %w", commitError(err, "movie", movieID, movieExists(ctx, uow)))
	}

	s.log.Info("Actor added to movie",
		zap.Int64("movie_id", movieID),
		zap.Int64("actor_id", actorID),
	)
	return nil
}

func movieExists(ctx context.Context, uow repository.UnitOfWork) func(id int64) (bool, error) {
	return func(id int64) (bool, error) {
		return uow.Movies().Exists(ctx, id)
	}
}

func lookupGenre(ctx context.Context, uow repository.UnitOfWork, id int64) (*entity.Genre, error) {
	genre, err := uow.Genres().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check genre: %w", err)
	}
	if genre == nil {
		return nil, invalid("genreId", "genre %d does not exist", id)
	}
	return genre, nil
}

func lookupDirector(ctx context.Context, uow repository.UnitOfWork, id int64) (*entity.Director, error) {
	director, err := uow.Directors().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check director: %w", err)
	}
	if director == nil {
		return nil, invalid("directorId", "director %d does not exist", id)
	}
	return director, nil
}
