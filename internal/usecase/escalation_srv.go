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

	"go.uber.org/zap"
)

type EscalationService interface {
	SetEscalationTime(ctx context.Context, req *request.EscalationTimeRequest) (*response.EscalationSettingResponse, error)
	GetEscalationSettings(ctx context.Context) ([]response.EscalationSettingResponse, error)
}

type escalationService struct {
	escalationRepo repository.EscalationRepository
	log            *zap.Logger
}

func NewEscalationService(escalationRepo repository.EscalationRepository, log *zap.Logger) EscalationService {
	return &escalationService{
		escalationRepo: escalationRepo,
		log:            log.With(zap.String("service", "escalation")),
	}
}

func (s *escalationService) SetEscalationTime(ctx context.Context, req *request.EscalationTimeRequest) (*response.EscalationSettingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	level := entity.EscalationLevel(req.Level)
	if !level.Valid() {
		return nil, fmt.Errorf("%w: level %q", ErrValidation, req.Level)
	}

	setting := &entity.EscalationSetting{
		Level:     level,
		TimeLimit: *req.TimeLimit,
		UpdatedAt: time.Now(),
	}

	if err := s.escalationRepo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("set escalation time: %w", err)
	}

	s.log.Info("Escalation time set",
		zap.String("level", string(level)),
		zap.Int("time_limit", setting.TimeLimit))

	resp := response.EscalationSettingToResponse(setting)
	return &resp, nil
}

func (s *escalationService) GetEscalationSettings(ctx context.Context) ([]response.EscalationSettingResponse, error) {
	settings, err := s.escalationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get escalation settings: %w", err)
	}

	result := make([]response.EscalationSettingResponse, 0, len(settings))
	for _, setting := range settings {
		result = append(result, response.EscalationSettingToResponse(setting))
	}

	return result, nil
}
