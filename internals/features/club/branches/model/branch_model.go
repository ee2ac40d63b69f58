package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type BranchModel struct {
	BranchID uuid.UUID `gorm:"column:branch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"branch_id"`

	BranchName    string  `gorm:"column:branch_name;type:text;not null;uniqueIndex" json:"branch_name"`
	BranchAddress *string `gorm:"column:branch_address;type:text"                   json:"branch_address,omitempty"`
	BranchPhone   *string `gorm:"column:branch_phone;type:text"                     json:"branch_phone,omitempty"`

	// e.g. {"court a","court b","weight room"}
	BranchFacilities pq.StringArray `gorm:"column:branch_facilities;type:text[]" json:"branch_facilities,omitempty"`

	BranchCreatedAt time.Time      `gorm:"column:branch_created_at;autoCreateTime" json:"branch_created_at"`
	BranchUpdatedAt *time.Time     `gorm:"column:branch_updated_at;autoUpdateTime" json:"branch_updated_at,omitempty"`
	BranchDeletedAt gorm.DeletedAt `gorm:"column:branch_deleted_at;index"          json:"branch_deleted_at,omitempty"`
}

func (BranchModel) TableName() string { return "branches" }
