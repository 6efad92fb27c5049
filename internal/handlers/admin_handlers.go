package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"deals4property_echo/internal/listings"
	"deals4property_echo/internal/models"
)

// AdminHandler handles the review queue. Routes using it sit behind the
// RequireAdmin middleware; nothing here re-checks a client-supplied flag.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ListApprovals returns the review queue, optionally filtered by status
func (h *AdminHandler) ListApprovals(c echo.Context) error {
	query := h.db.Order("created_at asc")
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var approvals []models.AdminApproval
	if err := query.Find(&approvals).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch approvals")
	}

	return c.JSON(http.StatusOK, approvals)
}

// Approve transitions a listing to Approved. Re-approving a rejected listing
// is allowed; there is no terminal state.
func (h *AdminHandler) Approve(c echo.Context) error {
	return h.decide(c, listings.DecisionApprove)
}

// Reject transitions a listing to Rejected, including pulling back an
// already approved one.
func (h *AdminHandler) Reject(c echo.Context) error {
	return h.decide(c, listings.DecisionReject)
}

func (h *AdminHandler) decide(c echo.Context, decision listings.Decision) error {
	category, err := parseCategory(c.Param("category"))
	if err != nil {
		return err
	}
	id := c.Param("id")

	if category == models.CategoryResale {
		var property models.ResaleProperty
		if err := h.db.First(&property, "id = ?", id).Error; err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Property not found")
		}
		if err := listings.ApplyDecision(&property.ListingDetails, decision); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if err := h.saveDecision(&property, listings.MirrorForListing(property)); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update status")
		}
		return c.JSON(http.StatusOK, property)
	}

	var property models.RentalProperty
	if err := h.db.First(&property, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Property not found")
	}
	if err := listings.ApplyDecision(&property.ListingDetails, decision); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.saveDecision(&property, listings.MirrorForListing(property)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update status")
	}
	return c.JSON(http.StatusOK, property)
}

// saveDecision writes the decided status to the source row and its review
// copy in one transaction, so the queue can never show a stale status.
func (h *AdminHandler) saveDecision(property interface{}, mirror models.AdminApproval) error {
	return h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(property).Error; err != nil {
			return err
		}
		return upsertMirror(tx, mirror)
	})
}
