package validator

// RegisterRequest carries the arguments and prompted passwords for the
// register command.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Role     string `json:"role" validate:"required,user_role"`
	Password string `json:"-" validate:"required,min=6,max=72"`
	Confirm  string `json:"-" validate:"required"`
}

// LoginRequest carries the login command arguments.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"-" validate:"required"`
}
