package adaptor

import (
	"fmt"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies?genreId&year&directorId&page&pageSize
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	req, err := parsePagination(r)
	if err != nil {
		utils.ResponseBadRequest(w, r, err.Error(), nil)
		return
	}

	filter, err := parseMovieFilter(r)
	if err != nil {
		utils.ResponseBadRequest(w, r, err.Error(), nil)
		return
	}

	movies, err := h.service.GetMovies(r.Context(), req, filter)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

func parseMovieFilter(r *http.Request) (request.MovieFilter, error) {
	query := r.URL.Query()

	genreID, err := utils.QueryInt64Ptr(query, "genreId")
	if err != nil {
		return request.MovieFilter{}, err
	}
	year, err := utils.QueryIntPtr(query, "year")
	if err != nil {
		return request.MovieFilter{}, err
	}
	directorID, err := utils.QueryInt64Ptr(query, "directorId")
	if err != nil {
		return request.MovieFilter{}, err
	}

	return request.MovieFilter{GenreID: genreID, Year: year, DirectorID: directorID}, nil
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// GetMovieDetails handles GET /movies/{id}/details
func (h *MovieHandler) GetMovieDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovieDetails(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get movie details")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// GetMovieReviews handles GET /movies/{id}/reviews?page&pageSize
func (h *MovieHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	req, err := parsePagination(r)
	if err != nil {
		utils.ResponseBadRequest(w, r, err.Error(), nil)
		return
	}

	reviews, err := h.service.GetMovieReviews(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("/movies/%d", movie.ID), movie)
}

// UpdateMovie handles PUT /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req request.MovieUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.UpdateMovie(r.Context(), id, &req); err != nil {
		handleServiceError(w, r, h.log, err, "update movie")
		return
	}

	utils.ResponseNoContent(w)
}

// PatchMovie handles PATCH /movies/{id}
func (h *MovieHandler) PatchMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req request.MoviePatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.PatchMovie(r.Context(), id, &req); err != nil {
		handleServiceError(w, r, h.log, err, "patch movie")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteMovie(r.Context(), id); err != nil {
		handleServiceError(w, r, h.log, err, "delete movie")
		return
	}

	utils.ResponseNoContent(w)
}

// AddActorToMovie handles POST /movies/{id}/actors/{actorId}
func (h *MovieHandler) AddActorToMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	actorID, ok := urlID(w, r, "actorId")
	if !ok {
		return
	}

	if err := h.service.AddActorToMovie(r.Context(), movieID, actorID); err != nil {
		handleServiceError(w, r, h.log, err, "add actor to movie")
		return
	}

	utils.ResponseNoContent(w)
}
