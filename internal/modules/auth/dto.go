package auth

import (
	"time"

	"portfolio/internal/domain"
)

// LoginRequest carries the identity fields handed back by the external
// login provider.
type LoginRequest struct {
	OpenID      string `json:"open_id" validate:"required"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	LoginMethod string `json:"login_method,omitempty"`
}

type UserResponse struct {
	ID           int64     `json:"id"`
	OpenID       string    `json:"open_id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		LastSignedIn: u.LastSignedIn,
	}
}
