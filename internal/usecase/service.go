package usecase

import (
	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Actor   ActorService
	Review  ReviewService
	Catalog CatalogService
}

func NewService(uow repository.UnitOfWorkFactory, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(uow, log),
		Actor:   NewActorService(uow, log),
		Review:  NewReviewService(uow, log),
		Catalog: NewCatalogService(uow, log),
	}
}
