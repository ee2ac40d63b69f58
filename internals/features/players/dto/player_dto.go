package dto

import (
	"time"

	"github.com/google/uuid"

	model "coachdesk_backend/internals/features/players/model"
)

/* ======================= REQUESTS ======================= */

type CreatePlayerRequest struct {
	PlayerName     string     `json:"player_name" validate:"required,min=2,max=100"`
	PlayerEmail    *string    `json:"player_email" validate:"omitempty,email"`
	PlayerPhone    *string    `json:"player_phone" validate:"omitempty,max=30"`
	PlayerBranchID *uuid.UUID `json:"player_branch_id" validate:"omitempty"`

	PlayerPackageType    *string    `json:"player_package_type" validate:"omitempty,max=100"`
	PlayerSessions       *float64   `json:"player_sessions" validate:"omitempty,gt=0"`
	PlayerEnrollmentDate *time.Time `json:"player_enrollment_date"`
	PlayerExpirationDate *time.Time `json:"player_expiration_date"`

	PlayerTotalTrainingFee *float64 `json:"player_total_training_fee" validate:"omitempty,gte=0"`
	PlayerDownpayment      *float64 `json:"player_downpayment" validate:"omitempty,gte=0"`
}

func (r *CreatePlayerRequest) ToModel(sessions float64) *model.PlayerModel {
	p := &model.PlayerModel{
		PlayerName:           r.PlayerName,
		PlayerEmail:          r.PlayerEmail,
		PlayerPhone:          r.PlayerPhone,
		PlayerBranchID:       r.PlayerBranchID,
		PlayerPackageType:    r.PlayerPackageType,
		PlayerEnrollmentDate: r.PlayerEnrollmentDate,
		PlayerExpirationDate: r.PlayerExpirationDate,
	}
	if r.PlayerPackageType != nil {
		p.PlayerSessions = sessions
		p.PlayerRemainingSessions = sessions
	}
	if r.PlayerTotalTrainingFee != nil {
		p.PlayerTotalTrainingFee = *r.PlayerTotalTrainingFee
	}
	if r.PlayerDownpayment != nil {
		p.PlayerDownpayment = *r.PlayerDownpayment
	}
	return p
}

// UpdatePlayerRequest patches identity and financial fields. Quota fields are
// deliberately absent; those change only through the package endpoints.
type UpdatePlayerRequest struct {
	PlayerName     *string    `json:"player_name" validate:"omitempty,min=2,max=100"`
	PlayerEmail    *string    `json:"player_email" validate:"omitempty,email"`
	PlayerPhone    *string    `json:"player_phone" validate:"omitempty,max=30"`
	PlayerBranchID *uuid.UUID `json:"player_branch_id"`

	PlayerTotalTrainingFee *float64 `json:"player_total_training_fee" validate:"omitempty,gte=0"`
	PlayerDownpayment      *float64 `json:"player_downpayment" validate:"omitempty,gte=0"`
}

func (r *UpdatePlayerRequest) ApplyTo(p *model.PlayerModel) {
	if r.PlayerName != nil {
		p.PlayerName = *r.PlayerName
	}
	if r.PlayerEmail != nil {
		p.PlayerEmail = r.PlayerEmail
	}
	if r.PlayerPhone != nil {
		p.PlayerPhone = r.PlayerPhone
	}
	if r.PlayerBranchID != nil {
		p.PlayerBranchID = r.PlayerBranchID
	}
	if r.PlayerTotalTrainingFee != nil {
		p.PlayerTotalTrainingFee = *r.PlayerTotalTrainingFee
	}
	if r.PlayerDownpayment != nil {
		p.PlayerDownpayment = *r.PlayerDownpayment
	}
}

// TouchesFinancials reports whether the patch changes fee or downpayment,
// which requires a balance recompute in the same transaction.
func (r *UpdatePlayerRequest) TouchesFinancials() bool {
	return r.PlayerTotalTrainingFee != nil || r.PlayerDownpayment != nil
}

type RenewPackageRequest struct {
	PackageType    string     `json:"package_type" validate:"required,max=100"`
	Sessions       *float64   `json:"sessions" validate:"omitempty,gt=0"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

type RetrievePackageRequest struct {
	ExtendDays  int      `json:"extend_days" validate:"required,gt=0"`
	NewSessions *float64 `json:"new_sessions" validate:"omitempty,gt=0"`
}

type EditSessionsRequest struct {
	Sessions float64 `json:"sessions" validate:"required,gt=0"`
}

/* ======================= RESPONSES ======================= */

type PlayerResponse struct {
	PlayerID       uuid.UUID  `json:"player_id"`
	PlayerName     string     `json:"player_name"`
	PlayerEmail    *string    `json:"player_email,omitempty"`
	PlayerPhone    *string    `json:"player_phone,omitempty"`
	PlayerBranchID *uuid.UUID `json:"player_branch_id,omitempty"`

	PlayerPackageType       *string    `json:"player_package_type,omitempty"`
	PlayerSessions          float64    `json:"player_sessions"`
	PlayerRemainingSessions float64    `json:"player_remaining_sessions"`
	PlayerEnrollmentDate    *time.Time `json:"player_enrollment_date,omitempty"`
	PlayerExpirationDate    *time.Time `json:"player_expiration_date,omitempty"`

	PlayerTotalTrainingFee float64 `json:"player_total_training_fee"`
	PlayerDownpayment      float64 `json:"player_downpayment"`
	PlayerRemainingBalance float64 `json:"player_remaining_balance"`

	PlayerCreatedAt time.Time  `json:"player_created_at"`
	PlayerUpdatedAt *time.Time `json:"player_updated_at,omitempty"`
}

func FromModel(p *model.PlayerModel) *PlayerResponse {
	return &PlayerResponse{
		PlayerID:                p.PlayerID,
		PlayerName:              p.PlayerName,
		PlayerEmail:             p.PlayerEmail,
		PlayerPhone:             p.PlayerPhone,
		PlayerBranchID:          p.PlayerBranchID,
		PlayerPackageType:       p.PlayerPackageType,
		PlayerSessions:          p.PlayerSessions,
		PlayerRemainingSessions: p.PlayerRemainingSessions,
		PlayerEnrollmentDate:    p.PlayerEnrollmentDate,
		PlayerExpirationDate:    p.PlayerExpirationDate,
		PlayerTotalTrainingFee:  p.PlayerTotalTrainingFee,
		PlayerDownpayment:       p.PlayerDownpayment,
		PlayerRemainingBalance:  p.PlayerRemainingBalance,
		PlayerCreatedAt:         p.PlayerCreatedAt,
		PlayerUpdatedAt:         p.PlayerUpdatedAt,
	}
}

func FromModels(players []model.PlayerModel) []*PlayerResponse {
	out := make([]*PlayerResponse, 0, len(players))
	for i := range players {
		out = append(out, FromModel(&players[i]))
	}
	return out
}
