package dto

import (
	"time"

	"github.com/google/uuid"

	m "coachdesk_backend/internals/features/users/model"
)

/* =============== REQUESTS =============== */

// Provision a new staff account (admin only)
type CreateUserRequest struct {
	UserName     string `json:"user_name"     validate:"required,min=2"`
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserRole     string `json:"user_role"     validate:"required,oneof=admin coach"`
}

func (r CreateUserRequest) ToModel(hashedPassword string) *m.UserModel {
	return &m.UserModel{
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		UserPassword: hashedPassword,
		UserRole:     r.UserRole,
		UserIsActive: true,
	}
}

type LoginRequest struct {
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* =============== RESPONSES =============== */

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UserRole      string     `json:"user_role"`
	UserIsActive  bool       `json:"user_is_active"`
	UserCreatedAt time.Time  `json:"user_created_at"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.UserModel) UserResponse {
	return UserResponse{
		UserID:        x.UserID,
		UserName:      x.UserName,
		UserEmail:     x.UserEmail,
		UserRole:      x.UserRole,
		UserIsActive:  x.UserIsActive,
		UserCreatedAt: x.UserCreatedAt,
		UserUpdatedAt: x.UserUpdatedAt,
	}
}

func FromModels(list []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
