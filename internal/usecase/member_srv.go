package usecase

import (
	"context"
	"errors"
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

// MemberService backs the admin API's user management.
type MemberService interface {
	CreateMember(ctx context.Context, req *request.CreateMemberRequest) (*response.MemberResponse, error)
	GetUsers(ctx context.Context) ([]response.UserResponse, error)
}

type memberService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewMemberService(userRepo repository.UserRepository, log *zap.Logger) MemberService {
	return &memberService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "member")),
	}
}

func (s *memberService) CreateMember(ctx context.Context, req *request.CreateMemberRequest) (*response.MemberResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	role := entity.UserRole(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role %q", ErrValidation, req.Role)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create member: %w", err)
	}

	s.log.Info("Member created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)))

	return &response.MemberResponse{
		Message: "Member created successfully",
		UserID:  user.ID.String(),
	}, nil
}

func (s *memberService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	result := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, response.UserToResponse(user))
	}

	return result, nil
}
