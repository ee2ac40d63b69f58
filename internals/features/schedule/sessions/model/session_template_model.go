package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SessionTemplateModel is a recurring weekly slot used to stamp out concrete
// training_sessions rows. Weekdays are lowercase english day names.
type SessionTemplateModel struct {
	SessionTemplateID uuid.UUID `gorm:"column:session_template_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_template_id"`

	SessionTemplateBranchID *uuid.UUID `gorm:"column:session_template_branch_id;type:uuid;index" json:"session_template_branch_id,omitempty"`
	SessionTemplateCoachID  *uuid.UUID `gorm:"column:session_template_coach_id;type:uuid;index"  json:"session_template_coach_id,omitempty"`

	SessionTemplateWeekdays  pq.StringArray `gorm:"column:session_template_weekdays;type:text[];not null" json:"session_template_weekdays"`
	SessionTemplateStartTime string         `gorm:"column:session_template_start_time;type:text;not null"  json:"session_template_start_time"`
	SessionTemplateEndTime   string         `gorm:"column:session_template_end_time;type:text;not null"    json:"session_template_end_time"`
	SessionTemplateCourt     *string        `gorm:"column:session_template_court;type:text"                json:"session_template_court,omitempty"`

	SessionTemplateIsActive bool `gorm:"column:session_template_is_active;not null;default:true" json:"session_template_is_active"`

	SessionTemplateCreatedAt time.Time      `gorm:"column:session_template_created_at;autoCreateTime" json:"session_template_created_at"`
	SessionTemplateUpdatedAt *time.Time     `gorm:"column:session_template_updated_at;autoUpdateTime" json:"session_template_updated_at,omitempty"`
	SessionTemplateDeletedAt gorm.DeletedAt `gorm:"column:session_template_deleted_at;index"          json:"-"`
}

func (SessionTemplateModel) TableName() string { return "session_templates" }
