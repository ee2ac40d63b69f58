package dto

import (
	"time"

	"github.com/google/uuid"

	model "coachdesk_backend/internals/features/schedule/attendance/model"
)

/* ======================= REQUESTS ======================= */

type CreateAttendanceRequest struct {
	AttendanceSessionID uuid.UUID `json:"attendance_session_id" validate:"required"`
	AttendancePlayerID  uuid.UUID `json:"attendance_player_id" validate:"required"`

	AttendanceStatus          *string  `json:"attendance_status" validate:"omitempty,oneof=present absent pending"`
	AttendanceSessionDuration *float64 `json:"attendance_session_duration" validate:"omitempty,gt=0"`
	AttendanceNotes           *string  `json:"attendance_notes" validate:"omitempty,max=500"`
}

// UpdateAttendanceRequest patches status/duration/notes. The session and
// player keys are immutable after insert.
type UpdateAttendanceRequest struct {
	AttendanceStatus          *string  `json:"attendance_status" validate:"omitempty,oneof=present absent pending"`
	AttendanceSessionDuration *float64 `json:"attendance_session_duration" validate:"omitempty,gt=0"`
	AttendanceNotes           *string  `json:"attendance_notes" validate:"omitempty,max=500"`
}

/* ======================= RESPONSES ======================= */

type AttendanceResponse struct {
	AttendanceID        uuid.UUID `json:"attendance_id"`
	AttendanceSessionID uuid.UUID `json:"attendance_session_id"`
	AttendancePlayerID  uuid.UUID `json:"attendance_player_id"`

	AttendanceStatus          string   `json:"attendance_status"`
	AttendanceSessionDuration *float64 `json:"attendance_session_duration,omitempty"`
	AttendancePackageCycle    *int     `json:"attendance_package_cycle,omitempty"`
	AttendanceNotes           *string  `json:"attendance_notes,omitempty"`

	AttendanceCreatedAt time.Time  `json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `json:"attendance_updated_at,omitempty"`
}

func FromModel(m *model.AttendanceRecordModel) *AttendanceResponse {
	return &AttendanceResponse{
		AttendanceID:              m.AttendanceID,
		AttendanceSessionID:       m.AttendanceSessionID,
		AttendancePlayerID:        m.AttendancePlayerID,
		AttendanceStatus:          m.AttendanceStatus,
		AttendanceSessionDuration: m.AttendanceSessionDuration,
		AttendancePackageCycle:    m.AttendancePackageCycle,
		AttendanceNotes:           m.AttendanceNotes,
		AttendanceCreatedAt:       m.AttendanceCreatedAt,
		AttendanceUpdatedAt:       m.AttendanceUpdatedAt,
	}
}

func FromModels(rows []model.AttendanceRecordModel) []*AttendanceResponse {
	out := make([]*AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
