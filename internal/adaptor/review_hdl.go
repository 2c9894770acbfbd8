package adaptor

import (
	"errors"
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	base
	service usecase.ReviewService
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger, debug bool) *ReviewHandler {
	return &ReviewHandler{
		base:    newBase(log, "review", debug),
		service: service,
	}
}

// CreateReview handles POST /user/review
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseDecodeError(w, err)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required review fields", validationErrors)
		return
	}

	if err := h.service.CreateReview(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "create review", "Error submitting review")
		return
	}

	utils.ResponseSuccess(w, "Review submitted")
}

// GetMovieReviews handles GET /user/reviews/{movie_id}
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movie_id")

	reviews, err := h.service.GetMovieReviews(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidID) {
			utils.ResponseBadRequest(w, "Invalid movie ID", nil)
			return
		}
		h.handleServiceError(w, err, "get reviews", "Error fetching reviews")
		return
	}

	utils.ResponseData(w, reviews)
}
