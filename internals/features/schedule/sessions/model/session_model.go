package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingSessionModel is one scheduled training slot at a branch. Sessions
// are soft-deleted so attendance rows keep a resolvable parent.
type TrainingSessionModel struct {
	SessionID uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`

	SessionBranchID *uuid.UUID `gorm:"column:session_branch_id;type:uuid;index" json:"session_branch_id,omitempty"`
	SessionCoachID  *uuid.UUID `gorm:"column:session_coach_id;type:uuid;index"  json:"session_coach_id,omitempty"`

	SessionDate      time.Time `gorm:"column:session_date;type:date;not null;index" json:"session_date"`
	SessionStartTime string    `gorm:"column:session_start_time;type:text;not null" json:"session_start_time"`
	SessionEndTime   string    `gorm:"column:session_end_time;type:text;not null"   json:"session_end_time"`

	SessionCourt *string `gorm:"column:session_court;type:text" json:"session_court,omitempty"`
	SessionNotes *string `gorm:"column:session_notes;type:text" json:"session_notes,omitempty"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt *time.Time     `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at,omitempty"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index"          json:"-"`
}

func (TrainingSessionModel) TableName() string { return "training_sessions" }
