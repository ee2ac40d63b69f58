package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoachModel struct {
	CoachID uuid.UUID `gorm:"column:coach_id;type:uuid;default:gen_random_uuid();primaryKey" json:"coach_id"`

	// Linked staff account, nullable for coaches without a login
	CoachUserID *uuid.UUID `gorm:"column:coach_user_id;type:uuid" json:"coach_user_id,omitempty"`

	CoachName      string     `gorm:"column:coach_name;type:text;not null" json:"coach_name"`
	CoachEmail     *string    `gorm:"column:coach_email;type:text"         json:"coach_email,omitempty"`
	CoachPhone     *string    `gorm:"column:coach_phone;type:text"         json:"coach_phone,omitempty"`
	CoachSpecialty *string    `gorm:"column:coach_specialty;type:text"     json:"coach_specialty,omitempty"`
	CoachBranchID  *uuid.UUID `gorm:"column:coach_branch_id;type:uuid"     json:"coach_branch_id,omitempty"`

	CoachCreatedAt time.Time      `gorm:"column:coach_created_at;autoCreateTime" json:"coach_created_at"`
	CoachUpdatedAt *time.Time     `gorm:"column:coach_updated_at;autoUpdateTime" json:"coach_updated_at,omitempty"`
	CoachDeletedAt gorm.DeletedAt `gorm:"column:coach_deleted_at;index"          json:"coach_deleted_at,omitempty"`
}

func (CoachModel) TableName() string { return "coaches" }
