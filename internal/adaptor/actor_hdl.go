package adaptor

import (
	"fmt"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// GetActors handles GET /actors?page&pageSize
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	req, err := parsePagination(r)
	if err != nil {
		utils.ResponseBadRequest(w, r, err.Error(), nil)
		return
	}

	actors, err := h.service.GetActors(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get actors")
		return
	}

	utils.ResponseSuccess(w, actors)
}

// GetActorByID handles GET /actors/{id}
func (h *ActorHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	actor, err := h.service.GetActorByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get actor by ID")
		return
	}

	utils.ResponseSuccess(w, actor)
}

// CreateActor handles POST /actors
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("/actors/%d", actor.ID), actor)
}

// UpdateActor handles PUT /actors/{id}
func (h *ActorHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req request.ActorUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.UpdateActor(r.Context(), id, &req); err != nil {
		handleServiceError(w, r, h.log, err, "update actor")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteActor handles DELETE /actors/{id}
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteActor(r.Context(), id); err != nil {
		handleServiceError(w, r, h.log, err, "delete actor")
		return
	}

	utils.ResponseNoContent(w)
}
