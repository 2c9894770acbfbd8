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

type MovieHandler struct {
	base
	service usecase.MovieService
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger, debug bool) *MovieHandler {
	return &MovieHandler{
		base:    newBase(log, "movie", debug),
		service: service,
	}
}

// CreateMovie handles POST /admin/create-movie
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseDecodeError(w, err)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		if req.CategoryID != "" && req.Name != "" {
			utils.ResponseBadRequest(w, "Invalid category ID", validationErrors)
			return
		}
		utils.ResponseBadRequest(w, "category_id and movie name are required", validationErrors)
		return
	}

	if err := h.service.CreateMovie(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "create movie", "Error adding movie")
		return
	}

	utils.ResponseSuccess(w, "Movie added")
}

// GetMoviesByCategory handles GET /user/movies/{category_id}
func (h *MovieHandler) GetMoviesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category_id")

	movies, err := h.service.GetMoviesByCategory(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidID) {
			utils.ResponseBadRequest(w, "Invalid category ID", nil)
			return
		}
		h.handleServiceError(w, err, "get movies", "Error fetching movies")
		return
	}

	utils.ResponseData(w, movies)
}
