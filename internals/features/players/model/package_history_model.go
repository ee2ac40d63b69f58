package model

import (
	"time"

	"github.com/google/uuid"
)

// PackageHistoryModel is an immutable snapshot of a player's package state,
// captured at renewal/replacement. Count of rows per player + 1 = the
// player's current cycle number. Never updated after insert.
type PackageHistoryModel struct {
	PackageHistoryID uuid.UUID `gorm:"column:package_history_id;type:uuid;default:gen_random_uuid();primaryKey" json:"package_history_id"`

	PackageHistoryPlayerID uuid.UUID `gorm:"column:package_history_player_id;type:uuid;not null;index" json:"package_history_player_id"`

	PackageHistoryPackageType       *string    `gorm:"column:package_history_package_type;type:text"               json:"package_history_package_type,omitempty"`
	PackageHistorySessions          float64    `gorm:"column:package_history_sessions;type:numeric;not null"       json:"package_history_sessions"`
	PackageHistoryRemainingSessions float64    `gorm:"column:package_history_remaining_sessions;type:numeric;not null" json:"package_history_remaining_sessions"`
	PackageHistoryEnrollmentDate    *time.Time `gorm:"column:package_history_enrollment_date;type:date"            json:"package_history_enrollment_date,omitempty"`
	PackageHistoryExpirationDate    *time.Time `gorm:"column:package_history_expiration_date;type:date"            json:"package_history_expiration_date,omitempty"`

	// "renewal - expired" | "renewal - completed" | "renewal - early"
	PackageHistoryReason string `gorm:"column:package_history_reason;type:text;not null" json:"package_history_reason"`

	PackageHistoryCapturedAt time.Time `gorm:"column:package_history_captured_at;autoCreateTime" json:"package_history_captured_at"`
}

func (PackageHistoryModel) TableName() string { return "package_history" }
