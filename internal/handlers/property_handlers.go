package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"deals4property_echo/internal/listings"
	"deals4property_echo/internal/middleware"
	"deals4property_echo/internal/models"
)

// PropertyHandler handles listing submission and owner inventory endpoints
type PropertyHandler struct {
	db *gorm.DB
}

func NewPropertyHandler(db *gorm.DB) *PropertyHandler {
	return &PropertyHandler{db: db}
}

// ListingRequest carries the fields shared by both submission forms
type ListingRequest struct {
	Type            string   `json:"type"`
	Terrace         bool     `json:"terrace"`
	Zone            string   `json:"zone"`
	Society         string   `json:"society"`
	RoadLocation    string   `json:"road_location"`
	Station         string   `json:"station"`
	Cosmo           bool     `json:"cosmo"`
	ConnectedPerson string   `json:"connected_person"`
	DirectBroker    string   `json:"direct_broker"`
	Images          []string `json:"images"`
	Video           string   `json:"video"`
}

func (r ListingRequest) details(userID string) models.ListingDetails {
	return models.ListingDetails{
		UserID:          userID,
		Type:            r.Type,
		Terrace:         r.Terrace,
		Zone:            r.Zone,
		Society:         r.Society,
		RoadLocation:    r.RoadLocation,
		Station:         r.Station,
		Cosmo:           r.Cosmo,
		ConnectedPerson: r.ConnectedPerson,
		DirectBroker:    r.DirectBroker,
		Images:          r.Images,
		Video:           r.Video,
	}
}

func (r ListingRequest) validate() error {
	if r.Society == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Society is required")
	}
	if r.RoadLocation == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Road location is required")
	}
	if r.Type == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "BHK type is required")
	}
	return nil
}

// ResaleRequest is the resale submission payload
type ResaleRequest struct {
	ListingRequest
	ExpectedPrice float64 `json:"expected_price"`
	FloorNo       string  `json:"floor_no"`
	FlatNo        string  `json:"flat_no"`
	ContactName   string  `json:"contact_name"`
	ContactNumber string  `json:"contact_number"`
}

// RentalRequest is the rental submission payload
type RentalRequest struct {
	ListingRequest
	Rent          float64  `json:"rent"`
	Deposit       float64  `json:"deposit"`
	Furnishing    string   `json:"furnishing"`
	BuildingNo    string   `json:"building_no"`
	FloorNo       int      `json:"floor_no"`
	TotalFloors   int      `json:"total_floors"`
	Wing          string   `json:"wing"`
	FlatNo        string   `json:"flat_no"`
	Landmark      string   `json:"landmark"`
	PropertyAge   int      `json:"property_age"`
	Amenities     []string `json:"amenities"`
	Parking       string   `json:"parking"`
	AvailableFrom string   `json:"available_from"`
	Ownership     string   `json:"ownership"`
	MasterBed     bool     `json:"master_bed"`
	ContactName   string   `json:"contact_name"`
	ContactNumber string   `json:"contact_number"`
}

func validateContact(name, number string) error {
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Contact name is required")
	}
	if !listings.ValidContactNumber(number) {
		return echo.NewHTTPError(http.StatusBadRequest, "Please enter a valid 10-digit contact number")
	}
	return nil
}

// StoreResale persists a new resale listing together with its admin review
// copy in one transaction, so a crash can't leave one without the other.
func (h *PropertyHandler) StoreResale(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req ResaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing payload")
	}
	if err := req.validate(); err != nil {
		return err
	}
	if err := validateContact(req.ContactName, req.ContactNumber); err != nil {
		return err
	}
	if req.ExpectedPrice < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Expected price must be at least 1")
	}

	property := models.ResaleProperty{
		ID:             uuid.New().String(),
		ListingDetails: req.details(user.ID),
		ExpectedPrice:  req.ExpectedPrice,
		FloorNo:        req.FloorNo,
		FlatNo:         req.FlatNo,
		ContactName:    req.ContactName,
		ContactNumber:  req.ContactNumber,
	}
	listings.NewSubmissionDefaults(&property.ListingDetails)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		mirror := listings.MirrorForListing(property)
		return tx.Create(&mirror).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add property")
	}

	return c.JSON(http.StatusCreated, property)
}

// StoreRental persists a new rental listing plus its review copy
func (h *PropertyHandler) StoreRental(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req RentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing payload")
	}
	if err := req.validate(); err != nil {
		return err
	}
	if err := validateContact(req.ContactName, req.ContactNumber); err != nil {
		return err
	}
	if req.Rent < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Rent must be at least 1")
	}
	if req.Deposit < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Deposit must be at least 1")
	}

	property := models.RentalProperty{
		ID:             uuid.New().String(),
		ListingDetails: req.details(user.ID),
		Rent:           req.Rent,
		Deposit:        req.Deposit,
		Furnishing:     req.Furnishing,
		BuildingNo:     req.BuildingNo,
		FloorNo:        req.FloorNo,
		TotalFloors:    req.TotalFloors,
		Wing:           req.Wing,
		FlatNo:         req.FlatNo,
		Landmark:       req.Landmark,
		PropertyAge:    req.PropertyAge,
		Amenities:      req.Amenities,
		Parking:        req.Parking,
		AvailableFrom:  req.AvailableFrom,
		Ownership:      req.Ownership,
		MasterBed:      req.MasterBed,
		ContactName:    req.ContactName,
		ContactNumber:  req.ContactNumber,
	}
	listings.NewSubmissionDefaults(&property.ListingDetails)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		mirror := listings.MirrorForListing(property)
		return tx.Create(&mirror).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add property")
	}

	return c.JSON(http.StatusCreated, property)
}

// MyInventory returns the authenticated user's own listings, newest first
func (h *PropertyHandler) MyInventory(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var resale []models.ResaleProperty
	if err := h.db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&resale).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch inventory")
	}

	var rental []models.RentalProperty
	if err := h.db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&rental).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch inventory")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"resale": resale,
		"rental": rental,
	})
}

// UpdateResale lets the owner edit a resale listing. Edits clear the
// is_approved flag but leave status untouched, matching the legacy edit path.
func (h *PropertyHandler) UpdateResale(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var property models.ResaleProperty
	if err := h.db.First(&property, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Property not found")
	}
	if property.UserID != user.ID && !user.IsAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "You can only edit your own listings")
	}

	var req ResaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing payload")
	}
	if err := req.validate(); err != nil {
		return err
	}
	if err := validateContact(req.ContactName, req.ContactNumber); err != nil {
		return err
	}
	if req.ExpectedPrice < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Expected price must be at least 1")
	}

	details := req.details(property.UserID)
	details.Status = property.Status
	details.ListingState = property.ListingState
	details.IsApproved = false
	property.ListingDetails = details
	property.ExpectedPrice = req.ExpectedPrice
	property.FloorNo = req.FloorNo
	property.FlatNo = req.FlatNo
	property.ContactName = req.ContactName
	property.ContactNumber = req.ContactNumber

	if err := h.saveWithMirror(&property, listings.MirrorForListing(property)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update property")
	}

	return c.JSON(http.StatusOK, property)
}

// UpdateRental lets the owner edit a rental listing
func (h *PropertyHandler) UpdateRental(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var property models.RentalProperty
	if err := h.db.First(&property, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Property not found")
	}
	if property.UserID != user.ID && !user.IsAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "You can only edit your own listings")
	}

	var req RentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing payload")
	}
	if err := req.validate(); err != nil {
		return err
	}
	if err := validateContact(req.ContactName, req.ContactNumber); err != nil {
		return err
	}
	if req.Rent < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Rent must be at least 1")
	}
	if req.Deposit < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Deposit must be at least 1")
	}

	details := req.details(property.UserID)
	details.Status = property.Status
	details.ListingState = property.ListingState
	details.IsApproved = false
	property.ListingDetails = details
	property.Rent = req.Rent
	property.Deposit = req.Deposit
	property.Furnishing = req.Furnishing
	property.BuildingNo = req.BuildingNo
	property.FloorNo = req.FloorNo
	property.TotalFloors = req.TotalFloors
	property.Wing = req.Wing
	property.FlatNo = req.FlatNo
	property.Landmark = req.Landmark
	property.PropertyAge = req.PropertyAge
	property.Amenities = req.Amenities
	property.Parking = req.Parking
	property.AvailableFrom = req.AvailableFrom
	property.Ownership = req.Ownership
	property.MasterBed = req.MasterBed
	property.ContactName = req.ContactName
	property.ContactNumber = req.ContactNumber

	if err := h.saveWithMirror(&property, listings.MirrorForListing(property)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update property")
	}

	return c.JSON(http.StatusOK, property)
}

// ListingStateRequest toggles the owner-controlled visibility flag
type ListingStateRequest struct {
	ListingState models.ListingState `json:"listing_state"`
}

// UpdateListingState sets Available / Hold / Sold Out on an owned listing
func (h *PropertyHandler) UpdateListingState(c echo.Context) error {
	user := middleware.CurrentUser(c)
	category, err := parseCategory(c.Param("category"))
	if err != nil {
		return err
	}
	id := c.Param("id")

	var req ListingStateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	switch req.ListingState {
	case models.ListingAvailable, models.ListingHold, models.ListingSoldOut:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "listing_state must be Available, Hold or Sold Out")
	}

	if category == models.CategoryResale {
		var property models.ResaleProperty
		if err := h.db.First(&property, "id = ?", id).Error; err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Property not found")
		}
		if property.UserID != user.ID && !user.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "You can only update your own listings")
		}
		property.ListingState = req.ListingState
		if err := h.db.Save(&property).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update listing state")
		}
		return c.JSON(http.StatusOK, property)
	}

	var property models.RentalProperty
	if err := h.db.First(&property, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Property not found")
	}
	if property.UserID != user.ID && !user.IsAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "You can only update your own listings")
	}
	property.ListingState = req.ListingState
	if err := h.db.Save(&property).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update listing state")
	}
	return c.JSON(http.StatusOK, property)
}

// saveWithMirror writes a property row and refreshes its review copy in the
// same transaction. A missing mirror is recreated rather than treated as an
// error.
func (h *PropertyHandler) saveWithMirror(property interface{}, mirror models.AdminApproval) error {
	return h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(property).Error; err != nil {
			return err
		}
		return upsertMirror(tx, mirror)
	})
}

func upsertMirror(tx *gorm.DB, mirror models.AdminApproval) error {
	var existing models.AdminApproval
	err := tx.Where("property_id = ?", mirror.PropertyID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return tx.Create(&mirror).Error
		}
		return err
	}

	existing.Category = mirror.Category
	existing.UserID = mirror.UserID
	existing.Society = mirror.Society
	existing.RoadLocation = mirror.RoadLocation
	existing.Type = mirror.Type
	existing.Station = mirror.Station
	existing.Amount = mirror.Amount
	existing.Deposit = mirror.Deposit
	existing.ContactName = mirror.ContactName
	existing.Status = mirror.Status
	return tx.Save(&existing).Error
}
