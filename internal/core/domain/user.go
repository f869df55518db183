package domain

import "time"

// UserRole controls what an operator may do.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "usuario"
)

// UserStatus gates login: newly registered accounts stay pending until an
// admin approves them.
type UserStatus string

const (
	UserActive  UserStatus = "ativo"
	UserPending UserStatus = "pendente"
	UserBlocked UserStatus = "bloqueado"
)

// User is an operator account of the application.
type User struct {
	UserID       string     `json:"userID"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}
