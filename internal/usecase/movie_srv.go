package usecase

import (
	"context"
	"fmt"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.MovieRequest) error
	GetMoviesByCategory(ctx context.Context, categoryID string) ([]response.MovieResponse, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	log       *zap.Logger
}

func NewMovieService(movieRepo repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		log:       log.With(zap.String("service", "movie")),
	}
}

// CreateMovie stores a movie. The category is not looked up first; the
// foreign key is the only guard.
func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return fmt.Errorf("%w: category_id %q", ErrInvalidID, req.CategoryID)
	}

	movie := &entity.Movie{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CategoryID:  categoryID,
		Name:        req.Name,
		TrailerLink: req.TrailerLink,
		SongLink:    req.SongLink,
		OTTLink:     req.OTTLink,
		Description: req.Description,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("category_id", categoryID.String()))

	return nil
}

func (s *movieService) GetMoviesByCategory(ctx context.Context, categoryID string) ([]response.MovieResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		s.log.Warn("Invalid category ID", zap.String("category_id", categoryID))
		return nil, fmt.Errorf("%w: category_id %q", ErrInvalidID, categoryID)
	}

	movies, err := s.movieRepo.FindByCategoryID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	result := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		result = append(result, response.MovieToResponse(movie))
	}

	return result, nil
}
