package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecordModel links a player to a session. One row per pair,
// enforced by the unique index. The session/player keys never change after
// insert; only status, duration, and notes are mutable. The cycle tag pins
// the row to the package cycle that was live when it was created.
type AttendanceRecordModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	AttendanceSessionID uuid.UUID `gorm:"column:attendance_session_id;type:uuid;not null;uniqueIndex:uq_attendance_session_player;index" json:"attendance_session_id"`
	AttendancePlayerID  uuid.UUID `gorm:"column:attendance_player_id;type:uuid;not null;uniqueIndex:uq_attendance_session_player;index"  json:"attendance_player_id"`

	// present | absent | pending
	AttendanceStatus          string   `gorm:"column:attendance_status;type:text;not null;default:pending" json:"attendance_status"`
	AttendanceSessionDuration *float64 `gorm:"column:attendance_session_duration;type:numeric"             json:"attendance_session_duration,omitempty"`
	AttendancePackageCycle    *int     `gorm:"column:attendance_package_cycle;type:int"                    json:"attendance_package_cycle,omitempty"`

	AttendanceNotes *string `gorm:"column:attendance_notes;type:text" json:"attendance_notes,omitempty"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
