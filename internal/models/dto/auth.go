package dto

import "github.com/Husnainn01/mizhuo-sub000/internal/models"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool               `json:"success"`
	User    models.SessionUser `json:"user"`
}

type SessionResponse struct {
	Success bool               `json:"success"`
	User    models.SessionUser `json:"user"`
}

type CreateUserRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}
