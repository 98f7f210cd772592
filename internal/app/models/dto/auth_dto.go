package dto

import "github.com/vkapoor/studentinfo/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the user summary returned with a fresh token
type UserInfo struct {
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	UserType models.RoleType `json:"user_type"`
	FullName string          `json:"full_name"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}
