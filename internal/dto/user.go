package dto

import (
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// CreateUserRequest is the body accepted by POST /users.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin dispatcher accounting"`
}

// UserSummary is the minimal view embedded in audit responses.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserResponse is the full single-record view. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	AuthProvider  string    `json:"authProvider,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToUserResponse formats the full view.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:            u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          string(u.Role),
		AuthProvider:  string(u.AuthProvider),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		LastUpdatedAt: u.LastUpdatedAt,
	}
}

// ToUserSummary formats the minimal cross-entity view.
func ToUserSummary(u domain.User) UserSummary {
	return UserSummary{ID: u.UserID, Name: u.Name}
}
