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

// Built-in admin credentials. Checked before the store is consulted.
const (
	AdminUsername = "admin"
	AdminPassword = "admin"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) error {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Cek username sudah dipakai
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	username := req.Username
	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		Username:     &username,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCitizen,
	}

	// 4. Save user; a concurrent signup may still win the unique index
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username))

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if req.Username == AdminUsername && req.Password == AdminPassword {
		s.log.Info("Built-in admin logged in")
		return &response.LoginResponse{Message: "Admin login success", Role: string(entity.RoleAdmin)}, nil
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", req.Username))

	resp := response.UserToResponse(user)
	return &response.LoginResponse{
		Message: "User login success",
		Role:    "user",
		User:    &resp,
	}, nil
}
