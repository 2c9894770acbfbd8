package request

type CreateMemberRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=1"`
	Password string  `json:"password" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=gp taluk mla admin citizen"`
}

type EscalationTimeRequest struct {
	Level     string `json:"level" validate:"required,oneof=gp taluk mla"`
	TimeLimit *int   `json:"time_limit" validate:"required,gt=0"`
}
