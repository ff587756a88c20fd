package adaptor

import (
	"fmt"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /moviereviews?page&pageSize
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	req, err := parsePagination(r)
	if err != nil {
		utils.ResponseBadRequest(w, r, err.Error(), nil)
		return
	}

	reviews, err := h.service.GetReviews(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// GetReviewByID handles GET /moviereviews/{id}
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	review, err := h.service.GetReviewByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get review by ID")
		return
	}

	utils.ResponseSuccess(w, review)
}

// CreateReview handles POST /moviereviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("/moviereviews/%d", review.ID), review)
}

// UpdateReview handles PUT /moviereviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req request.ReviewUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.UpdateReview(r.Context(), id, &req); err != nil {
		handleServiceError(w, r, h.log, err, "update review")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteReview handles DELETE /moviereviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), id); err != nil {
		handleServiceError(w, r, h.log, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}
