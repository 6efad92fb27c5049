package models

import (
	"time"

	"gorm.io/gorm"
)

// PropertyCategory distinguishes the two listing collections
type PropertyCategory string

const (
	CategoryResale PropertyCategory = "Resale"
	CategoryRental PropertyCategory = "Rental"
)

// PropertyStatus is the admin review status of a listing
type PropertyStatus string

const (
	StatusPendingApproval PropertyStatus = "Pending Approval"
	StatusApproved        PropertyStatus = "Approved"
	StatusRejected        PropertyStatus = "Rejected"
)

// ListingState is the owner-controlled visibility flag, distinct from the
// admin approval status
type ListingState string

const (
	ListingAvailable ListingState = "Available"
	ListingHold      ListingState = "Hold"
	ListingSoldOut   ListingState = "Sold Out"
)

// ListingDetails holds the fields shared by resale and rental listings
type ListingDetails struct {
	UserID       string         `gorm:"type:varchar(128);index" json:"user_id"`
	Status       PropertyStatus `gorm:"type:varchar(30);default:'Pending Approval';index" json:"status"`
	IsApproved   bool           `gorm:"default:false" json:"is_approved"`
	ListingState ListingState   `gorm:"type:varchar(20);default:'Available'" json:"listing_state"`

	Type            string   `gorm:"type:varchar(20)" json:"type"` // BHK type, e.g. "2 BHK"
	Terrace         bool     `json:"terrace"`
	Zone            string   `gorm:"type:varchar(50)" json:"zone"`
	Society         string   `gorm:"type:varchar(255)" json:"society"`
	RoadLocation    string   `gorm:"type:varchar(100);index" json:"road_location"`
	Station         string   `gorm:"type:varchar(100)" json:"station"`
	Cosmo           bool     `json:"cosmo"`
	ConnectedPerson string   `gorm:"type:varchar(255)" json:"connected_person"`
	DirectBroker    string   `gorm:"type:varchar(20)" json:"direct_broker"` // "Direct" or "Broker"
	Images          []string `gorm:"serializer:json" json:"images,omitempty"`
	Video           string   `gorm:"type:text" json:"video,omitempty"`
}

// ResaleProperty is a for-sale unit listing with an expected price
type ResaleProperty struct {
	ID        string         `gorm:"type:varchar(64);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	ListingDetails `gorm:"embedded" json:"details"`

	ExpectedPrice float64 `gorm:"type:decimal(15,2)" json:"expected_price"`
	FloorNo       string  `gorm:"type:varchar(20)" json:"floor_no,omitempty"`
	FlatNo        string  `gorm:"type:varchar(20)" json:"flat_no,omitempty"`
	ContactName   string  `gorm:"type:varchar(255)" json:"contact_name,omitempty"`
	ContactNumber string  `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
}

// RentalProperty is a for-rent unit listing with rent and deposit amounts
type RentalProperty struct {
	ID        string         `gorm:"type:varchar(64);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	ListingDetails `gorm:"embedded" json:"details"`

	Rent          float64  `gorm:"type:decimal(15,2)" json:"rent"`
	Deposit       float64  `gorm:"type:decimal(15,2)" json:"deposit"`
	Furnishing    string   `gorm:"type:varchar(30)" json:"furnishing"` // Unfurnished / Semi-Furnished / Fully Furnished
	BuildingNo    string   `gorm:"type:varchar(20)" json:"building_no,omitempty"`
	FloorNo       int      `json:"floor_no"`
	TotalFloors   int      `json:"total_floors"`
	Wing          string   `gorm:"type:varchar(20)" json:"wing,omitempty"`
	FlatNo        string   `gorm:"type:varchar(20)" json:"flat_no"`
	Landmark      string   `gorm:"type:varchar(255)" json:"landmark,omitempty"`
	PropertyAge   int      `json:"property_age"`
	Amenities     []string `gorm:"serializer:json" json:"amenities,omitempty"`
	Parking       string   `gorm:"type:varchar(20)" json:"parking"` // Open / Covered / None
	AvailableFrom string   `gorm:"type:varchar(20)" json:"available_from"`
	Ownership     string   `gorm:"type:varchar(50)" json:"ownership"`
	MasterBed     bool     `json:"master_bed"`
	ContactName   string   `gorm:"type:varchar(255)" json:"contact_name"`
	ContactNumber string   `gorm:"type:varchar(20)" json:"contact_number"`
}

// Listing is the read-side view shared by both property categories. The
// dashboard filter engine works against this interface so it never has to
// care which table a row came from.
type Listing interface {
	ListingID() string
	Category() PropertyCategory
	Details() ListingDetails
	// BudgetAmount is the figure the budget filter compares against:
	// rent for rentals, expected price for resale.
	BudgetAmount() float64
	CreatedTime() time.Time
}

func (p ResaleProperty) ListingID() string          { return p.ID }
func (p ResaleProperty) Category() PropertyCategory { return CategoryResale }
func (p ResaleProperty) Details() ListingDetails    { return p.ListingDetails }
func (p ResaleProperty) BudgetAmount() float64      { return p.ExpectedPrice }
func (p ResaleProperty) CreatedTime() time.Time     { return p.CreatedAt }

func (p RentalProperty) ListingID() string          { return p.ID }
func (p RentalProperty) Category() PropertyCategory { return CategoryRental }
func (p RentalProperty) Details() ListingDetails    { return p.ListingDetails }
func (p RentalProperty) BudgetAmount() float64      { return p.Rent }
func (p RentalProperty) CreatedTime() time.Time     { return p.CreatedAt }
