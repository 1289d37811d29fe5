package dto

import "internship_backend/internal/models"

type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"omitempty,oneof=student company"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	UserID    string          `json:"userId"`
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Token     string          `json:"token"`
	IsNewUser bool            `json:"isNewUser"`
}
