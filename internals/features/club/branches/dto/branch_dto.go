package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "coachdesk_backend/internals/features/club/branches/model"
)

/* =============== REQUESTS =============== */

type CreateBranchRequest struct {
	BranchName       string   `json:"branch_name"       validate:"required,min=2"`
	BranchAddress    *string  `json:"branch_address"    validate:"omitempty"`
	BranchPhone      *string  `json:"branch_phone"      validate:"omitempty"`
	BranchFacilities []string `json:"branch_facilities" validate:"omitempty,dive,min=1"`
}

func (r CreateBranchRequest) ToModel() *m.BranchModel {
	return &m.BranchModel{
		BranchName:       r.BranchName,
		BranchAddress:    r.BranchAddress,
		BranchPhone:      r.BranchPhone,
		BranchFacilities: pq.StringArray(r.BranchFacilities),
	}
}

// Update (partial)
type UpdateBranchRequest struct {
	BranchName       *string  `json:"branch_name"       validate:"omitempty,min=2"`
	BranchAddress    *string  `json:"branch_address"    validate:"omitempty"`
	BranchPhone      *string  `json:"branch_phone"      validate:"omitempty"`
	BranchFacilities []string `json:"branch_facilities" validate:"omitempty,dive,min=1"`
}

func (r UpdateBranchRequest) ApplyTo(mo *m.BranchModel) {
	if r.BranchName != nil {
		mo.BranchName = *r.BranchName
	}
	if r.BranchAddress != nil {
		mo.BranchAddress = r.BranchAddress
	}
	if r.BranchPhone != nil {
		mo.BranchPhone = r.BranchPhone
	}
	if r.BranchFacilities != nil {
		mo.BranchFacilities = pq.StringArray(r.BranchFacilities)
	}
}

/* =============== RESPONSES =============== */

type BranchResponse struct {
	BranchID         uuid.UUID  `json:"branch_id"`
	BranchName       string     `json:"branch_name"`
	BranchAddress    *string    `json:"branch_address,omitempty"`
	BranchPhone      *string    `json:"branch_phone,omitempty"`
	BranchFacilities []string   `json:"branch_facilities,omitempty"`
	BranchCreatedAt  time.Time  `json:"branch_created_at"`
	BranchUpdatedAt  *time.Time `json:"branch_updated_at,omitempty"`
}

func FromModel(x m.BranchModel) BranchResponse {
	return BranchResponse{
		BranchID:         x.BranchID,
		BranchName:       x.BranchName,
		BranchAddress:    x.BranchAddress,
		BranchPhone:      x.BranchPhone,
		BranchFacilities: []string(x.BranchFacilities),
		BranchCreatedAt:  x.BranchCreatedAt,
		BranchUpdatedAt:  x.BranchUpdatedAt,
	}
}

func FromModels(list []m.BranchModel) []BranchResponse {
	out := make([]BranchResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
