// file: internals/features/finance/payments/service/balance.go
//
// Balance ledger: remaining_balance = max(0, fee - downpayment - Σ payments).
// The stored column is a mirror; RecomputeBalance re-derives it from the
// payment rows inside the caller's transaction.
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "coachdesk_backend/internals/features/finance/payments/model"
	playerModel "coachdesk_backend/internals/features/players/model"
)

// RemainingBalance clamps at zero; overpayment never goes negative
func RemainingBalance(totalFee, downpayment, paid float64) float64 {
	if r := totalFee - downpayment - paid; r > 0 {
		return r
	}
	return 0
}

// RecomputeBalance re-derives the player's remaining balance from the
// payment rows. Must run in the same transaction as the payment or fee
// change that triggered it.
func RecomputeBalance(tx *gorm.DB, playerID uuid.UUID) error {
	var p playerModel.PlayerModel
	if err := tx.Select("player_id", "player_total_training_fee", "player_downpayment").
		Where("player_id = ?", playerID).
		First(&p).Error; err != nil {
		return err
	}

	var paid float64
	if err := tx.Model(&paymentModel.PaymentModel{}).
		Where("payment_player_id = ?", playerID).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&paid).Error; err != nil {
		return err
	}

	return tx.Model(&playerModel.PlayerModel{}).
		Where("player_id = ?", playerID).
		Update("player_remaining_balance",
			RemainingBalance(p.PlayerTotalTrainingFee, p.PlayerDownpayment, paid)).Error
}
