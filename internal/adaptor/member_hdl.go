package adaptor

import (
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type MemberHandler struct {
	base
	service usecase.MemberService
}

func NewMemberHandler(service usecase.MemberService, log *zap.Logger, debug bool) *MemberHandler {
	return &MemberHandler{
		base:    newBase(log, "member", debug),
		service: service,
	}
}

// CreateMember handles POST /create-member
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMemberRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseDecodeError(w, err)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		if _, bad := validationErrors["role"]; bad {
			utils.ResponseBadRequest(w, "Invalid role", nil)
			return
		}
		utils.ResponseBadRequest(w, "Name, email and password are required", validationErrors)
		return
	}

	resp, err := h.service.CreateMember(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create member", "Error creating member")
		return
	}

	utils.ResponseData(w, resp)
}

// GetUsers handles GET /users
func (h *MemberHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get users", "Failed to fetch users")
		return
	}

	utils.ResponseData(w, users)
}
