package dto

import (
	"time"

	"github.com/google/uuid"

	model "coachdesk_backend/internals/features/finance/payments/model"
)

/* ======================= REQUESTS ======================= */

type CreatePaymentRequest struct {
	PaymentPlayerID uuid.UUID `json:"payment_player_id" validate:"required"`

	PaymentAmount float64    `json:"payment_amount" validate:"required,gt=0"`
	PaymentDate   *time.Time `json:"payment_date"`
	PaymentMethod *string    `json:"payment_method" validate:"omitempty,max=50"`
	PaymentNotes  *string    `json:"payment_notes" validate:"omitempty,max=500"`
}

func (r *CreatePaymentRequest) ToModel() *model.PaymentModel {
	date := time.Now()
	if r.PaymentDate != nil {
		date = *r.PaymentDate
	}
	return &model.PaymentModel{
		PaymentPlayerID: r.PaymentPlayerID,
		PaymentAmount:   r.PaymentAmount,
		PaymentDate:     date,
		PaymentMethod:   r.PaymentMethod,
		PaymentNotes:    r.PaymentNotes,
	}
}

// CheckoutRequest opens a Midtrans Snap checkout toward a player's
// remaining balance
type CheckoutRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Amount   float64   `json:"amount" validate:"required,gt=0"`
}

/* ======================= RESPONSES ======================= */

type PaymentResponse struct {
	PaymentID       uuid.UUID `json:"payment_id"`
	PaymentPlayerID uuid.UUID `json:"payment_player_id"`

	PaymentAmount float64   `json:"payment_amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	PaymentNotes  *string   `json:"payment_notes,omitempty"`

	PaymentMidtransOrderID *string `json:"payment_midtrans_order_id,omitempty"`
	PaymentMidtransStatus  *string `json:"payment_midtrans_status,omitempty"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`
}

func FromModel(m *model.PaymentModel) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:              m.PaymentID,
		PaymentPlayerID:        m.PaymentPlayerID,
		PaymentAmount:          m.PaymentAmount,
		PaymentDate:            m.PaymentDate,
		PaymentMethod:          m.PaymentMethod,
		PaymentNotes:           m.PaymentNotes,
		PaymentMidtransOrderID: m.PaymentMidtransOrderID,
		PaymentMidtransStatus:  m.PaymentMidtransStatus,
		PaymentCreatedAt:       m.PaymentCreatedAt,
	}
}

func FromModels(rows []model.PaymentModel) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

// PlayerPaymentSummary is the per-player financial recap
type PlayerPaymentSummary struct {
	PlayerID         uuid.UUID          `json:"player_id"`
	TotalTrainingFee float64            `json:"total_training_fee"`
	Downpayment      float64            `json:"downpayment"`
	TotalPaid        float64            `json:"total_paid"`
	RemainingBalance float64            `json:"remaining_balance"`
	Payments         []*PaymentResponse `json:"payments"`
}
