package structs

import (
	"time"

	"github.com/google/uuid"
)

// User is the mock account the session belongs to
type User struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Bio         string `json:"bio"`
}

type AuthClaims struct {
	Sub string    `json:"sub"`
	Iat time.Time `json:"iat"`
	Exp time.Time `json:"exp"`
	Jti uuid.UUID `json:"jti"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"`
}

type SignupRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"`
	IsPhone    bool   `json:"isPhone"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,e164"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
