package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "coachdesk_backend/internals/features/schedule/sessions/model"
)

/* ======================= REQUESTS ======================= */

type CreateSessionRequest struct {
	SessionBranchID *uuid.UUID `json:"session_branch_id"`
	SessionCoachID  *uuid.UUID `json:"session_coach_id"`

	SessionDate      time.Time `json:"session_date" validate:"required"`
	SessionStartTime string    `json:"session_start_time" validate:"required"`
	SessionEndTime   string    `json:"session_end_time" validate:"required"`

	SessionCourt *string `json:"session_court" validate:"omitempty,max=50"`
	SessionNotes *string `json:"session_notes" validate:"omitempty,max=500"`
}

func (r *CreateSessionRequest) ToModel() *model.TrainingSessionModel {
	return &model.TrainingSessionModel{
		SessionBranchID:  r.SessionBranchID,
		SessionCoachID:   r.SessionCoachID,
		SessionDate:      r.SessionDate,
		SessionStartTime: r.SessionStartTime,
		SessionEndTime:   r.SessionEndTime,
		SessionCourt:     r.SessionCourt,
		SessionNotes:     r.SessionNotes,
	}
}

type UpdateSessionRequest struct {
	SessionBranchID *uuid.UUID `json:"session_branch_id"`
	SessionCoachID  *uuid.UUID `json:"session_coach_id"`

	SessionDate      *time.Time `json:"session_date"`
	SessionStartTime *string    `json:"session_start_time"`
	SessionEndTime   *string    `json:"session_end_time"`

	SessionCourt *string `json:"session_court" validate:"omitempty,max=50"`
	SessionNotes *string `json:"session_notes" validate:"omitempty,max=500"`
}

func (r *UpdateSessionRequest) ApplyTo(m *model.TrainingSessionModel) {
	if r.SessionBranchID != nil {
		m.SessionBranchID = r.SessionBranchID
	}
	if r.SessionCoachID != nil {
		m.SessionCoachID = r.SessionCoachID
	}
	if r.SessionDate != nil {
		m.SessionDate = *r.SessionDate
	}
	if r.SessionStartTime != nil {
		m.SessionStartTime = *r.SessionStartTime
	}
	if r.SessionEndTime != nil {
		m.SessionEndTime = *r.SessionEndTime
	}
	if r.SessionCourt != nil {
		m.SessionCourt = r.SessionCourt
	}
	if r.SessionNotes != nil {
		m.SessionNotes = r.SessionNotes
	}
}

// AddRosterRequest enrolls players into a session, creating pending
// attendance rows tagged with each player's current cycle.
type AddRosterRequest struct {
	PlayerIDs []uuid.UUID `json:"player_ids" validate:"required,min=1,dive,required"`
	Notify    bool        `json:"notify"`
}

type CreateTemplateRequest struct {
	SessionTemplateBranchID *uuid.UUID `json:"session_template_branch_id"`
	SessionTemplateCoachID  *uuid.UUID `json:"session_template_coach_id"`

	SessionTemplateWeekdays  []string `json:"session_template_weekdays" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	SessionTemplateStartTime string   `json:"session_template_start_time" validate:"required"`
	SessionTemplateEndTime   string   `json:"session_template_end_time" validate:"required"`
	SessionTemplateCourt     *string  `json:"session_template_court" validate:"omitempty,max=50"`
}

func (r *CreateTemplateRequest) ToModel() *model.SessionTemplateModel {
	return &model.SessionTemplateModel{
		SessionTemplateBranchID:  r.SessionTemplateBranchID,
		SessionTemplateCoachID:   r.SessionTemplateCoachID,
		SessionTemplateWeekdays:  pq.StringArray(r.SessionTemplateWeekdays),
		SessionTemplateStartTime: r.SessionTemplateStartTime,
		SessionTemplateEndTime:   r.SessionTemplateEndTime,
		SessionTemplateCourt:     r.SessionTemplateCourt,
		SessionTemplateIsActive:  true,
	}
}

// GenerateSessionsRequest stamps concrete sessions out of active templates
// for a date range.
type GenerateSessionsRequest struct {
	From time.Time `json:"from" validate:"required"`
	To   time.Time `json:"to" validate:"required"`
}

/* ======================= RESPONSES ======================= */

type SessionResponse struct {
	SessionID       uuid.UUID  `json:"session_id"`
	SessionBranchID *uuid.UUID `json:"session_branch_id,omitempty"`
	SessionCoachID  *uuid.UUID `json:"session_coach_id,omitempty"`

	SessionDate      time.Time `json:"session_date"`
	SessionStartTime string    `json:"session_start_time"`
	SessionEndTime   string    `json:"session_end_time"`

	SessionCourt *string `json:"session_court,omitempty"`
	SessionNotes *string `json:"session_notes,omitempty"`

	SessionCreatedAt time.Time  `json:"session_created_at"`
	SessionUpdatedAt *time.Time `json:"session_updated_at,omitempty"`
}

func FromModel(m *model.TrainingSessionModel) *SessionResponse {
	return &SessionResponse{
		SessionID:        m.SessionID,
		SessionBranchID:  m.SessionBranchID,
		SessionCoachID:   m.SessionCoachID,
		SessionDate:      m.SessionDate,
		SessionStartTime: m.SessionStartTime,
		SessionEndTime:   m.SessionEndTime,
		SessionCourt:     m.SessionCourt,
		SessionNotes:     m.SessionNotes,
		SessionCreatedAt: m.SessionCreatedAt,
		SessionUpdatedAt: m.SessionUpdatedAt,
	}
}

func FromModels(rows []model.TrainingSessionModel) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
