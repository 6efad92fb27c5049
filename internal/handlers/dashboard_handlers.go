package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"deals4property_echo/internal/listings"
	"deals4property_echo/internal/middleware"
	"deals4property_echo/internal/models"
	"deals4property_echo/internal/services"
)

// DashboardHandler serves the filtered listing table, the banner strip and
// the share action
type DashboardHandler struct {
	db      *gorm.DB
	cache   *services.RedisCache
	banners *services.BannerService
}

func NewDashboardHandler(db *gorm.DB, cache *services.RedisCache, banners *services.BannerService) *DashboardHandler {
	return &DashboardHandler{db: db, cache: cache, banners: banners}
}

// Listings returns the visible, filtered rows for one category. The fetch is
// an indexed query keyed by the viewer's subscribed locations (plus their own
// rows); the filter predicates themselves run in the pure engine so the
// result matches what the engine's tests promise.
func (h *DashboardHandler) Listings(c echo.Context) error {
	user := middleware.CurrentUser(c)
	viewer := listings.ViewerFromUser(user)

	category := models.PropertyCategory(c.QueryParam("category"))
	if category != models.CategoryRental {
		category = models.CategoryResale
	}

	filters, err := filtersFromQuery(c)
	if err != nil {
		return err
	}

	// The unscoped view is an admin affordance; brokers can never opt out
	// of the entitlement gate.
	ignoreSubscription := c.QueryParam("all") == "true" && user.IsAdmin

	resale, rental, err := h.fetchApproved(viewer)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch listings")
	}

	visible := listings.VisibleListings(category, resale, rental, filters, viewer, ignoreSubscription)

	rows := make([]interface{}, 0, len(visible))
	for _, l := range visible {
		rows = append(rows, redactListing(l, viewer))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"category": category,
		"count":    len(rows),
		"rows":     rows,
	})
}

func filtersFromQuery(c echo.Context) (listings.Filters, error) {
	f := listings.Filters{
		BHKType:     c.QueryParam("bhk_type"),
		Station:     c.QueryParam("station"),
		SubLocation: c.QueryParam("sub_location"),
	}

	if raw := c.QueryParam("min_budget"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "min_budget must be a number")
		}
		f.MinBudget = v
	}
	if raw := c.QueryParam("max_budget"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "max_budget must be a number")
		}
		f.MaxBudget = v
	}
	switch c.QueryParam("cosmo") {
	case "true":
		v := true
		f.Cosmo = &v
	case "false":
		v := false
		f.Cosmo = &v
	}

	return f, nil
}

// fetchApproved pulls the approved rows the viewer could possibly see:
// everything for admins, otherwise rows in subscribed locations plus the
// viewer's own.
func (h *DashboardHandler) fetchApproved(viewer listings.Viewer) ([]models.ResaleProperty, []models.RentalProperty, error) {
	normalized := make([]string, 0, len(viewer.Subscriptions))
	for _, name := range viewer.Subscriptions {
		if n := strings.ToLower(strings.TrimSpace(name)); n != "" {
			normalized = append(normalized, n)
		}
	}

	scope := func(q *gorm.DB) *gorm.DB {
		q = q.Where("status = ?", models.StatusApproved)
		if viewer.IsAdmin {
			return q
		}
		if len(normalized) > 0 {
			return q.Where("LOWER(TRIM(road_location)) IN ? OR user_id = ?", normalized, viewer.ID)
		}
		return q.Where("user_id = ?", viewer.ID)
	}

	var resale []models.ResaleProperty
	if err := scope(h.db.Model(&models.ResaleProperty{})).Find(&resale).Error; err != nil {
		return nil, nil, err
	}

	var rental []models.RentalProperty
	if err := scope(h.db.Model(&models.RentalProperty{})).Find(&rental).Error; err != nil {
		return nil, nil, err
	}

	return resale, rental, nil
}

// redactListing blanks floor, flat and contact fields when the viewer is not
// entitled to them
func redactListing(l models.Listing, viewer listings.Viewer) models.Listing {
	if listings.CanSeeContactDetails(l, viewer) {
		return l
	}
	switch p := l.(type) {
	case models.ResaleProperty:
		p.FloorNo = ""
		p.FlatNo = ""
		p.ContactName = ""
		p.ContactNumber = ""
		return p
	case models.RentalProperty:
		p.FloorNo = 0
		p.FlatNo = ""
		p.ContactName = ""
		p.ContactNumber = ""
		return p
	}
	return l
}

// Banners returns the promo strip for the viewer's subscribed locations,
// cached so the 60s dashboard refresh doesn't hammer the feed
func (h *DashboardHandler) Banners(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var locations []string
	if !user.IsAdmin {
		for _, sub := range user.SubscriptionLocations {
			locations = append(locations, sub.Name)
		}
		if len(locations) == 0 {
			return c.JSON(http.StatusOK, []services.Banner{})
		}
	}

	key := "banners:" + strings.ToLower(strings.Join(locations, ","))
	banners, err := services.GetOrSet(h.cache, c.Request().Context(), key, 10*time.Minute, func() ([]services.Banner, error) {
		return h.banners.FetchBanners(locations)
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch banners")
	}

	return c.JSON(http.StatusOK, banners)
}

// ShareRequest selects properties to include in an outgoing message
type ShareRequest struct {
	Category         models.PropertyCategory `json:"category"`
	PropertyIDs      []string                `json:"property_ids"`
	Prefix           string                  `json:"prefix"`
	ReceiverName     string                  `json:"receiver_name"`
	ReceiverWhatsApp string                  `json:"receiver_whatsapp"`
	TotalCount       int                     `json:"total_count"`
}

// Share composes the WhatsApp text for the selected properties and returns
// the deep link. The link is handed back to the browser; nothing is sent
// from the server and there is no delivery confirmation.
func (h *DashboardHandler) Share(c echo.Context) error {
	user := middleware.CurrentUser(c)
	viewer := listings.ViewerFromUser(user)

	var req ShareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid share payload")
	}
	if req.ReceiverName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Receiver name is required")
	}
	if len(req.PropertyIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Select at least one property")
	}
	if req.Category != models.CategoryRental {
		req.Category = models.CategoryResale
	}

	var resale []models.ResaleProperty
	var rental []models.RentalProperty
	if req.Category == models.CategoryResale {
		if err := h.db.Where("id IN ?", req.PropertyIDs).Find(&resale).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch properties")
		}
	} else {
		if err := h.db.Where("id IN ?", req.PropertyIDs).Find(&rental).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch properties")
		}
	}

	// Run the selection through the engine so Hold / Sold Out rows and
	// rows outside the viewer's entitlements can't be exfiltrated by id.
	selected := listings.VisibleListings(req.Category, resale, rental, listings.Filters{}, viewer, false)
	if len(selected) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "None of the selected properties are visible to you")
	}

	sender := listings.ShareSender{Name: user.FullName, Phone: user.Phone}
	text := listings.WhatsAppText(selected, req.Prefix, req.ReceiverName, viewer, sender, req.TotalCount)
	link := listings.ShareLink(req.ReceiverWhatsApp, text)

	return c.JSON(http.StatusOK, map[string]string{
		"text": text,
		"link": link,
	})
}
