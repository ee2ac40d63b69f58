package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationLogModel records every outbound notification attempt, success
// or failure. Payload keeps the rendered subject/body for audit.
type NotificationLogModel struct {
	NotificationLogID uuid.UUID `gorm:"column:notification_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_log_id"`

	NotificationLogPlayerID  *uuid.UUID `gorm:"column:notification_log_player_id;type:uuid;index"  json:"notification_log_player_id,omitempty"`
	NotificationLogSessionID *uuid.UUID `gorm:"column:notification_log_session_id;type:uuid;index" json:"notification_log_session_id,omitempty"`

	NotificationLogChannel   string         `gorm:"column:notification_log_channel;type:text;not null"   json:"notification_log_channel"`
	NotificationLogRecipient string         `gorm:"column:notification_log_recipient;type:text;not null" json:"notification_log_recipient"`
	NotificationLogPayload   datatypes.JSON `gorm:"column:notification_log_payload;type:jsonb"           json:"notification_log_payload,omitempty"`

	NotificationLogSuccess bool    `gorm:"column:notification_log_success;not null" json:"notification_log_success"`
	NotificationLogError   *string `gorm:"column:notification_log_error;type:text"  json:"notification_log_error,omitempty"`

	NotificationLogCreatedAt time.Time `gorm:"column:notification_log_created_at;autoCreateTime" json:"notification_log_created_at"`
}

func (NotificationLogModel) TableName() string { return "notification_logs" }
