package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:text;not null"              json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:text;not null;uniqueIndex" json:"user_email"`

	// bcrypt hash, never serialized
	UserPassword string `gorm:"column:user_password;type:text;not null" json:"-"`

	UserRole     string `gorm:"column:user_role;type:text;not null;default:coach" json:"user_role"` // admin | coach
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true"       json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"          json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
