package adaptor

import (
	"fmt"
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type EscalationHandler struct {
	base
	service usecase.EscalationService
}

func NewEscalationHandler(service usecase.EscalationService, log *zap.Logger, debug bool) *EscalationHandler {
	return &EscalationHandler{
		base:    newBase(log, "escalation", debug),
		service: service,
	}
}

// SetEscalationTime handles POST /set-escalation-time
func (h *EscalationHandler) SetEscalationTime(w http.ResponseWriter, r *http.Request) {
	var req request.EscalationTimeRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseDecodeError(w, err)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		if _, bad := validationErrors["level"]; bad {
			utils.ResponseBadRequest(w, "Invalid escalation level", nil)
			return
		}
		utils.ResponseBadRequest(w, "time_limit must be a positive number of hours", validationErrors)
		return
	}

	setting, err := h.service.SetEscalationTime(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "set escalation time", "Error setting escalation time")
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Escalation time for %s set to %d hours", setting.Level, setting.TimeLimit))
}

// GetEscalationSettings handles GET /escalation-settings
func (h *EscalationHandler) GetEscalationSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetEscalationSettings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get escalation settings", "Failed to fetch escalation settings")
		return
	}

	utils.ResponseData(w, settings)
}
