package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

// CatalogService lists the reference data movies point at.
type CatalogService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetDirectors(ctx context.Context) ([]response.DirectorResponse, error)
}

type catalogService struct {
	uow repository.UnitOfWorkFactory
	log *zap.Logger
}

func NewCatalogService(uow repository.UnitOfWorkFactory, log *zap.Logger) CatalogService {
	return &catalogService{
		uow: uow,
		log: log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.uow.New().Genres().GetAll(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	resp := make([]response.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		resp = append(resp, response.GenreToResponse(genre))
	}
	return resp, nil
}

func (s *catalogService) GetDirectors(ctx context.Context) ([]response.DirectorResponse, error) {
	directors, err := s.uow.New().Directors().GetAll(ctx)
	if err != nil {
		s.log.Error("Failed to get directors", zap.Error(err))
		return nil, fmt.Errorf("get directors: %w", err)
	}

	resp := make([]response.DirectorResponse, 0, len(directors))
	for _, director := range directors {
		resp = append(resp, response.DirectorToResponse(director))
	}
	return resp, nil
}
