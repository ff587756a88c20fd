package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type ActorService interface {
	GetActors(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error)
	GetActorByID(ctx context.Context, id int64) (*response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	UpdateActor(ctx context.Context, id int64, req *request.ActorUpdateRequest) error
	DeleteActor(ctx context.Context, id int64) error
}

type actorService struct {
	uow repository.UnitOfWorkFactory
	log *zap.Logger
}

func NewActorService(uow repository.UnitOfWorkFactory, log *zap.Logger) ActorService {
	return &actorService{
		uow: uow,
		log: log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) GetActors(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error) {
	actors, err := s.uow.New().Actors().GetAll(ctx)
	if err != nil {
		s.log.Error("Failed to get actors", zap.Error(err))
		return nil, fmt.Errorf("get actors: %w", err)
	}

	sortByID(actors, actorID)
	return paginate(actors, req, response.ActorToResponse), nil
}

func (s *actorService) GetActorByID(ctx context.Context, id int64) (*response.ActorResponse, error) {
	actor, err := s.uow.New().Actors().GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get actor by ID", zap.Error(err), zap.Int64("actor_id", id))
		return nil, fmt.Errorf("get actor by id: %w", err)
	}
	if actor == nil {
		return nil, notFound("actor", id)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create actor validation failed", zap.Error(err))
		return nil, err
	}

	uow := s.uow.New()
	actor := &entity.Actor{Name: req.Name}

	uow.Actors().Add(actor)
	if err := uow.Complete(ctx); err != nil {
		s.log.Error("Failed to create actor", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created", zap.Int64("actor_id", actor.ID), zap.String("name", actor.Name))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

// UpdateActor renames an actor. A concurrent delete surfaces as not found.
func (s *actorService) UpdateActor(ctx context.Context, id int64, req *request.ActorUpdateRequest) error {
	if err := checkRouteID(id, req.ID); err != nil {
		return err
	}
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update actor validation failed", zap.Error(err), zap.Int64("actor_id", id))
		return err
	}

	uow := s.uow.New()

	actor, err := uow.Actors().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return notFound("actor", id)
	}

	actor.Name = req.Name

	uow.Actors().Update(actor)
	if err := uow.Complete(ctx); err != nil {
		s.log.Warn("Failed to update actor", zap.Error(err), zap.Int64("actor_id", id))
		return fmt.Errorf("update actor: %w", commitError(err, "actor", id, actorExists(ctx, uow)))
	}

	s.log.Info("Actor updated", zap.Int64("actor_id", id))
	return nil
}

func (s *actorService) DeleteActor(ctx context.Context, id int64) error {
	uow := s.uow.New()

	actor, err := uow.Actors().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return notFound("actor", id)
	}

	uow.Actors().Remove(actor)
	if err := uow.Complete(ctx); err != nil {
		s.log.Warn("Failed to delete actor", zap.Error(err), zap.Int64("actor_id", id))
		return fmt.Errorf("delete actor: %w", commitError(err, "actor", id, actorExists(ctx, uow)))
	}

	s.log.Info("Actor deleted", zap.Int64("actor_id", id))
	return nil
}

func actorExists(ctx context.Context, uow repository.UnitOfWork) func(id int64) (bool, error) {
	return func(id int64) (bool, error) {
		return uow.Actors().Exists(ctx, id)
	}
}
