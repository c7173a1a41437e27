package auth

import types "github.com/skillup-platform/skillup-backend/internal/domain"

type RegisterCommand struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
}

type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshCommand struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutCommand struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type VerifyEmailCommand struct {
	Token string `json:"token" validate:"required"`
}

type ForgotPasswordCommand struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordCommand struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=128"`
}

type ChangePasswordCommand struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

// TokenPair is returned by register, login and refresh.
type TokenPair struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	User         *types.User `json:"user"`
}
