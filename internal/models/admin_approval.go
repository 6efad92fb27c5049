package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminApproval is the denormalized review copy of a listing kept in a flat
// collection for the admin queue. It is written and updated in the same
// transaction as the source row so the two can never drift apart.
type AdminApproval struct {
	ID        string         `gorm:"type:varchar(64);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Category   PropertyCategory `gorm:"type:varchar(20);index" json:"category"`
	PropertyID string           `gorm:"type:varchar(64);uniqueIndex" json:"property_id"`
	UserID     string           `gorm:"type:varchar(128);index" json:"user_id"`

	Society      string         `gorm:"type:varchar(255)" json:"society"`
	RoadLocation string         `gorm:"type:varchar(100)" json:"road_location"`
	Type         string         `gorm:"type:varchar(20)" json:"type"`
	Station      string         `gorm:"type:varchar(100)" json:"station"`
	Amount       float64        `gorm:"type:decimal(15,2)" json:"amount"` // expected price or rent
	Deposit      float64        `gorm:"type:decimal(15,2)" json:"deposit,omitempty"`
	ContactName  string         `gorm:"type:varchar(255)" json:"contact_name"`
	Status       PropertyStatus `gorm:"type:varchar(30);index" json:"status"`
}
