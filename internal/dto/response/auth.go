package response

import (
	"time"

	"moviehub/internal/data/entity"
)

// LoginResponse carries the caller's role; User is absent for the built-in admin.
type LoginResponse struct {
	Message string        `json:"message"`
	Role    string        `json:"role"`
	User    *UserResponse `json:"user,omitempty"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Username  *string         `json:"username,omitempty"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

type MemberResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
