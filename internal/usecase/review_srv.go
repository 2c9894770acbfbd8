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

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) error
	GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	log        *zap.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return fmt.Errorf("%w: user_id %q", ErrInvalidID, req.UserID)
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return fmt.Errorf("%w: movie_id %q", ErrInvalidID, req.MovieID)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:     userID,
		MovieID:    movieID,
		ReviewText: req.ReviewText,
		Rating:     req.Rating,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review submitted",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("user_id", userID.String()))

	return nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID", zap.String("movie_id", movieID))
		return nil, fmt.Errorf("%w: movie_id %q", ErrInvalidID, movieID)
	}

	reviews, err := s.reviewRepo.FindByMovieID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	result := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, response.ReviewToResponse(review))
	}

	return result, nil
}
