package adaptor

import (
	"errors"
	"net/http"

	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// Handler groups the public API handlers.
type Handler struct {
	Auth     *AuthHandler
	Category *CategoryHandler
	Movie    *MovieHandler
	Review   *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger, debug bool) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log, debug),
		Category: NewCategoryHandler(service.Category, log, debug),
		Movie:    NewMovieHandler(service.Movie, log, debug),
		Review:   NewReviewHandler(service.Review, log, debug),
	}
}

// AdminHandler groups the admin API handlers.
type AdminHandler struct {
	Member     *MemberHandler
	Escalation *EscalationHandler
}

func NewAdminHandler(service *usecase.Service, log *zap.Logger, debug bool) *AdminHandler {
	return &AdminHandler{
		Member:     NewMemberHandler(service.Member, log, debug),
		Escalation: NewEscalationHandler(service.Escalation, log, debug),
	}
}

// base carries what every handler needs to answer a failed service call.
type base struct {
	log   *zap.Logger
	debug bool
}

func newBase(log *zap.Logger, name string, debug bool) base {
	return base{
		log:   log.With(zap.String("handler", name)),
		debug: debug,
	}
}

// handleServiceError maps service errors to status codes. failMessage is the
// body message for anything unexpected.
func (b base) handleServiceError(w http.ResponseWriter, err error, operation, failMessage string) {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrInvalidID):
		b.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUsernameTaken):
		b.log.Warn(operation+" failed - username taken", zap.Error(err))
		utils.ResponseConflict(w, "Username already exists")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		b.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	default:
		b.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		detail := ""
		if b.debug {
			detail = err.Error()
		}
		utils.ResponseInternalError(w, failMessage, detail)
	}
}
