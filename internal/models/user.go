package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a broker account. The primary key is the Firebase UID so
// rows line up with the identity provider without a mapping table.
type User struct {
	ID        string         `gorm:"type:varchar(128);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	FullName   string  `gorm:"type:varchar(255)" json:"full_name"`
	Phone      string  `gorm:"type:varchar(50)" json:"phone"`
	Email      string  `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	ReraNumber string  `gorm:"type:varchar(100)" json:"rera_number"`
	State      string  `gorm:"type:varchar(100)" json:"state"`
	City       string  `gorm:"type:varchar(100)" json:"city"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	IsAdmin    bool    `gorm:"default:false" json:"is_admin"`

	// Relationships
	SubscriptionLocations []SubscriptionLocation `gorm:"foreignKey:UserID" json:"subscription_locations,omitempty"`
}

// SubscriptionLocation is a paid entitlement granting visibility into
// listings tagged with a matching location name. SubscribedAt is nil until
// the purchase settles.
type SubscriptionLocation struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID       string     `gorm:"type:varchar(128);index" json:"user_id"`
	LocationID   string     `gorm:"type:varchar(50)" json:"location_id"`
	Name         string     `gorm:"type:varchar(100)" json:"name"`
	Price        float64    `gorm:"type:decimal(15,2)" json:"price"`
	SubscribedAt *time.Time `json:"subscribed_at"`
}
