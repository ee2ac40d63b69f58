package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel is one installment toward a player's training fee. Rows are
// append/delete only; corrections happen by deleting and re-inserting, and
// the player's remaining balance is recomputed either way.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentPlayerID uuid.UUID `gorm:"column:payment_player_id;type:uuid;not null;index" json:"payment_player_id"`

	PaymentAmount float64   `gorm:"column:payment_amount;type:numeric;not null" json:"payment_amount"`
	PaymentDate   time.Time `gorm:"column:payment_date;type:date;not null"      json:"payment_date"`
	PaymentMethod *string   `gorm:"column:payment_method;type:text"             json:"payment_method,omitempty"`
	PaymentNotes  *string   `gorm:"column:payment_notes;type:text"              json:"payment_notes,omitempty"`

	// Set only for payments that came through the Midtrans checkout
	PaymentMidtransOrderID *string `gorm:"column:payment_midtrans_order_id;type:text;uniqueIndex" json:"payment_midtrans_order_id,omitempty"`
	PaymentMidtransStatus  *string `gorm:"column:payment_midtrans_status;type:text"               json:"payment_midtrans_status,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string { return "payments" }
