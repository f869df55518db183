package dto

import (
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
)

// RegisterUserRequest defines the expected JSON body for self-registration.
// New accounts stay pending until an admin approves them.
type RegisterUserRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// LoginRequest defines the expected JSON body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserStatusRequest approves or blocks an account.
type UpdateUserStatusRequest struct {
	Status domain.UserStatus `json:"status" binding:"required,oneof=ativo pendente bloqueado"`
}

// UpdateUserRoleRequest changes an account's role.
type UpdateUserRoleRequest struct {
	Role domain.UserRole `json:"role" binding:"required,oneof=admin usuario"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID    string            `json:"userID"`
	Username  string            `json:"username"`
	Name      *string           `json:"name,omitempty"`
	Email     *string           `json:"email,omitempty"`
	Role      domain.UserRole   `json:"role"`
	Status    domain.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ToUserResponse maps a domain user to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
