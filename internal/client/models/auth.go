package models

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginCredentials is the body of POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c LoginCredentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Password, validation.Required),
	)
}

// RegisterCredentials is the body of POST /auth/register.
type RegisterCredentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c RegisterCredentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Password, validation.Required, validation.Length(6, 100)),
	)
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// MeResponse is returned by GET /auth/me.
type MeResponse struct {
	User *User `json:"user"`
}

// MessageResponse is returned by DELETE /users/:id.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body the API sends with non-2xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
