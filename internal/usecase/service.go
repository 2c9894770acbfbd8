package usecase

import (
	"moviehub/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Category   CategoryService
	Movie      MovieService
	Review     ReviewService
	Member     MemberService
	Escalation EscalationService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo.User, log),
		Category:   NewCategoryService(repo.Category, log),
		Movie:      NewMovieService(repo.Movie, log),
		Review:     NewReviewService(repo.Review, log),
		Member:     NewMemberService(repo.User, log),
		Escalation: NewEscalationService(repo.Escalation, log),
	}
}
