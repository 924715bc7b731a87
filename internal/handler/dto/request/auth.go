package request

import "gin-booking/internal/usecase/commands"

// Field presence and format are checked by the auth usecase so that the
// messages are localized per field; binding only caps sizes.
type RegisterRequest struct {
	Name            string `json:"name" binding:"max=100"`
	Email           string `json:"email" binding:"max=254"`
	Password        string `json:"password" binding:"max=128"`
	ConfirmPassword string `json:"confirm_password" binding:"max=128"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"max=254"`
	Password string `json:"password" binding:"max=128"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"max=254"`
}

type ConfirmPasswordResetRequest struct {
	Code        string `json:"code" binding:"required,notblank"`
	NewPassword string `json:"new_password" binding:"required,max=128"`
}
