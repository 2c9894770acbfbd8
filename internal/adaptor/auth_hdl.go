package adaptor

import (
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	base
	service usecase.AuthService
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger, debug bool) *AuthHandler {
	return &AuthHandler{
		base:    newBase(log, "auth", debug),
		service: service,
	}
}

// Signup handles POST /user/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseDecodeError(w, err)
		return
	}

	// A weak password is reported on its own only when every field is present.
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		if len(validationErrors) == 1 && utils.HasTagError(req, "password", "password_policy") {
			utils.ResponseBadRequest(w, utils.PasswordPolicyMessage, nil)
			return
		}
		utils.ResponseBadRequest(w, "All fields are required", validationErrors)
		return
	}

	if err := h.service.Signup(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "signup", "Signup failed")
		return
	}

	utils.ResponseCreated(w, "User registered successfully")
}

// Login handles POST /user/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseDecodeError(w, err)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Username and password are required", validationErrors)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login", "Login failed")
		return
	}

	utils.ResponseData(w, resp)
}
