package repository

import (
	"errors"

	"moviehub/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert hits a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

type Repository struct {
	User       UserRepository
	Category   CategoryRepository
	Movie      MovieRepository
	Review     ReviewRepository
	Escalation EscalationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Category:   NewCategoryRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		Review:     NewReviewRepository(db, log),
		Escalation: NewEscalationRepository(db, log),
	}
}
