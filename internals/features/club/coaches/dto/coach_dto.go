package dto

import (
	"time"

	"github.com/google/uuid"

	m "coachdesk_backend/internals/features/club/coaches/model"
)

/* =============== REQUESTS =============== */

type CreateCoachRequest struct {
	CoachUserID    *uuid.UUID `json:"coach_user_id"    validate:"omitempty"`
	CoachName      string     `json:"coach_name"       validate:"required,min=2"`
	CoachEmail     *string    `json:"coach_email"      validate:"omitempty,email"`
	CoachPhone     *string    `json:"coach_phone"      validate:"omitempty"`
	CoachSpecialty *string    `json:"coach_specialty"  validate:"omitempty"`
	CoachBranchID  *uuid.UUID `json:"coach_branch_id"  validate:"omitempty"`
}

func (r CreateCoachRequest) ToModel() *m.CoachModel {
	return &m.CoachModel{
		CoachUserID:    r.CoachUserID,
		CoachName:      r.CoachName,
		CoachEmail:     r.CoachEmail,
		CoachPhone:     r.CoachPhone,
		CoachSpecialty: r.CoachSpecialty,
		CoachBranchID:  r.CoachBranchID,
	}
}

// Update (partial)
type UpdateCoachRequest struct {
	CoachUserID    *uuid.UUID `json:"coach_user_id"    validate:"omitempty"`
	CoachName      *string    `json:"coach_name"       validate:"omitempty,min=2"`
	CoachEmail     *string    `json:"coach_email"      validate:"omitempty,email"`
	CoachPhone     *string    `json:"coach_phone"      validate:"omitempty"`
	CoachSpecialty *string    `json:"coach_specialty"  validate:"omitempty"`
	CoachBranchID  *uuid.UUID `json:"coach_branch_id"  validate:"omitempty"`
}

func (r UpdateCoachRequest) ApplyTo(mo *m.CoachModel) {
	if r.CoachUserID != nil {
		mo.CoachUserID = r.CoachUserID
	}
	if r.CoachName != nil {
		mo.CoachName = *r.CoachName
	}
	if r.CoachEmail != nil {
		mo.CoachEmail = r.CoachEmail
	}
	if r.CoachPhone != nil {
		mo.CoachPhone = r.CoachPhone
	}
	if r.CoachSpecialty != nil {
		mo.CoachSpecialty = r.CoachSpecialty
	}
	if r.CoachBranchID != nil {
		mo.CoachBranchID = r.CoachBranchID
	}
}

/* =============== RESPONSES =============== */

type CoachResponse struct {
	CoachID        uuid.UUID  `json:"coach_id"`
	CoachUserID    *uuid.UUID `json:"coach_user_id,omitempty"`
	CoachName      string     `json:"coach_name"`
	CoachEmail     *string    `json:"coach_email,omitempty"`
	CoachPhone     *string    `json:"coach_phone,omitempty"`
	CoachSpecialty *string    `json:"coach_specialty,omitempty"`
	CoachBranchID  *uuid.UUID `json:"coach_branch_id,omitempty"`
	CoachCreatedAt time.Time  `json:"coach_created_at"`
	CoachUpdatedAt *time.Time `json:"coach_updated_at,omitempty"`
}

func FromModel(x m.CoachModel) CoachResponse {
	return CoachResponse{
		CoachID:        x.CoachID,
		CoachUserID:    x.CoachUserID,
		CoachName:      x.CoachName,
		CoachEmail:     x.CoachEmail,
		CoachPhone:     x.CoachPhone,
		CoachSpecialty: x.CoachSpecialty,
		CoachBranchID:  x.CoachBranchID,
		CoachCreatedAt: x.CoachCreatedAt,
		CoachUpdatedAt: x.CoachUpdatedAt,
	}
}

func FromModels(list []m.CoachModel) []CoachResponse {
	out := make([]CoachResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
