package response

import (
	"time"

	"moviehub/internal/data/entity"
)

type EscalationSettingResponse struct {
	Level     entity.EscalationLevel `json:"level"`
	TimeLimit int                    `json:"time_limit"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func EscalationSettingToResponse(setting *entity.EscalationSetting) EscalationSettingResponse {
	return EscalationSettingResponse{
		Level:     setting.Level,
		TimeLimit: setting.TimeLimit,
		UpdatedAt: setting.UpdatedAt,
	}
}
