package model

import (
	"time"

	"github.com/google/uuid"
)

// PlayerModel carries the live package state for the player's current cycle.
// Prior cycles are frozen into package_history rows. Players are hard-deleted;
// attendance/payments/history rows go with them via ON DELETE CASCADE.
type PlayerModel struct {
	PlayerID uuid.UUID `gorm:"column:player_id;type:uuid;default:gen_random_uuid();primaryKey" json:"player_id"`

	PlayerName     string     `gorm:"column:player_name;type:text;not null" json:"player_name"`
	PlayerEmail    *string    `gorm:"column:player_email;type:text"         json:"player_email,omitempty"`
	PlayerPhone    *string    `gorm:"column:player_phone;type:text"         json:"player_phone,omitempty"`
	PlayerBranchID *uuid.UUID `gorm:"column:player_branch_id;type:uuid"     json:"player_branch_id,omitempty"`

	// Current package cycle
	PlayerPackageType       *string    `gorm:"column:player_package_type;type:text"                     json:"player_package_type,omitempty"`
	PlayerSessions          float64    `gorm:"column:player_sessions;type:numeric;not null;default:0"   json:"player_sessions"`
	PlayerRemainingSessions float64    `gorm:"column:player_remaining_sessions;type:numeric;not null;default:0" json:"player_remaining_sessions"`
	PlayerEnrollmentDate    *time.Time `gorm:"column:player_enrollment_date;type:date"                  json:"player_enrollment_date,omitempty"`
	PlayerExpirationDate    *time.Time `gorm:"column:player_expiration_date;type:date"                  json:"player_expiration_date,omitempty"`

	// Financials
	PlayerTotalTrainingFee float64 `gorm:"column:player_total_training_fee;type:numeric;not null;default:0" json:"player_total_training_fee"`
	PlayerDownpayment      float64 `gorm:"column:player_downpayment;type:numeric;not null;default:0"        json:"player_downpayment"`
	PlayerRemainingBalance float64 `gorm:"column:player_remaining_balance;type:numeric;not null;default:0"  json:"player_remaining_balance"`

	PlayerCreatedAt time.Time  `gorm:"column:player_created_at;autoCreateTime" json:"player_created_at"`
	PlayerUpdatedAt *time.Time `gorm:"column:player_updated_at;autoUpdateTime" json:"player_updated_at,omitempty"`
}

func (PlayerModel) TableName() string { return "players" }
