package dto

import (
	"github.com/google/uuid"

	"github.com/urbancare/urbancare-api/internal/entity"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,max=100"`
	Mobile   string `json:"mobile" binding:"required,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Role is optional; when present the account's stored role must match.
	Role string `json:"role,omitempty"`
}

type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UserProfile is the public view of an account. The password hash never
// leaves the service layer.
type UserProfile struct {
	ID     uuid.UUID   `json:"id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Mobile string      `json:"mobile"`
	Role   entity.Role `json:"role"`
}

// CheckEmailProfile is the minimal profile returned by the pre-register
// existence check.
type CheckEmailProfile struct {
	ID   uuid.UUID   `json:"id"`
	Name string      `json:"name"`
	Role entity.Role `json:"role"`
}

func NewUserProfile(user *entity.User) *UserProfile {
	return &UserProfile{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Mobile: user.Mobile,
		Role:   user.Role,
	}
}
