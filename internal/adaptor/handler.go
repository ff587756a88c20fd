package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Actor   *ActorHandler
	Review  *ReviewHandler
	Catalog *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Actor:   NewActorHandler(service.Actor, log),
		Review:  NewReviewHandler(service.Review, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
	}
}

// parsePagination reads page and pageSize. Absent values take the defaults;
// out-of-range values are clamped later, malformed ones are rejected.
func parsePagination(r *http.Request) (request.PaginatedRequest, error) {
	query := r.URL.Query()

	page, err := utils.QueryInt(query, "page", utils.DefaultPage)
	if err != nil {
		return request.PaginatedRequest{}, err
	}

	pageSize, err := utils.QueryInt(query, "pageSize", utils.DefaultPageSize)
	if err != nil {
		return request.PaginatedRequest{}, err
	}

	return request.PaginatedRequest{Page: page, PageSize: pageSize}, nil
}

// urlID parses the named route parameter, writing a 400 when it is not a positive integer.
func urlID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, r, err.Error(), nil)
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return false
	}
	return true
}

// handleServiceError maps service errors to status codes. Anything unclassified
// is logged and answered with a generic 500.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, r, validationErr.Message, validationErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, r, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, r, err.Error())

	default:
		requestID, _ := utils.GetRequestIDFromContext(r.Context())
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestID))
		utils.ResponseInternalError(w, r)
	}
}
