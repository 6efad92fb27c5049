package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"deals4property_echo/internal/listings"
	"deals4property_echo/internal/middleware"
	"deals4property_echo/internal/models"
	"deals4property_echo/internal/services"
)

// SubscriptionHandler handles the subscription page and checkout endpoints
type SubscriptionHandler struct {
	db       *gorm.DB
	checkout *services.CheckoutService
}

func NewSubscriptionHandler(db *gorm.DB, checkout *services.CheckoutService) *SubscriptionHandler {
	return &SubscriptionHandler{db: db, checkout: checkout}
}

// Locations returns the catalog annotated for the viewer: disabled rows are
// active entitlements that can't be toggled off yet, locked rows need a
// purchase.
func (h *SubscriptionHandler) Locations(c echo.Context) error {
	user := middleware.CurrentUser(c)
	options := listings.AnnotateCatalog(user.SubscriptionLocations, time.Now())
	return c.JSON(http.StatusOK, options)
}

// SelectionRequest carries the catalog ids the user ticked. Prices are
// resolved server-side from the catalog; any price in the payload is
// ignored.
type SelectionRequest struct {
	SelectedIDs []string `json:"selected_ids"`
}

// Save replaces the user's subscription set with the merge of their still
// active entries and the newly selected ones
func (h *SubscriptionHandler) Save(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid selection payload")
	}
	for _, id := range req.SelectedIDs {
		if _, ok := listings.CatalogByID(id); !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown location id "+id)
		}
	}

	if err := h.checkout.CommitSubscription(user.ID, req.SelectedIDs, time.Now()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update subscription")
	}

	var subs []models.SubscriptionLocation
	if err := h.db.Where("user_id = ?", user.ID).Find(&subs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch subscription")
	}
	return c.JSON(http.StatusOK, subs)
}

// Checkout opens (or immediately settles) a payment session for the
// selection. The total comes from the server-side catalog.
func (h *SubscriptionHandler) Checkout(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid selection payload")
	}
	if len(req.SelectedIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Please select at least one location")
	}

	callbackURL := c.Scheme() + "://" + c.Request().Host + "/subscription/finish"
	result, err := h.checkout.InitiateCheckout(user, req.SelectedIDs, callbackURL)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GatewayCallback receives payment notifications from the gateway. Public
// route; the order id ties the notification back to a session we created.
func (h *SubscriptionHandler) GatewayCallback(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid callback body")
	}

	var payload struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.OrderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid callback payload")
	}

	if err := h.checkout.HandleGatewayCallback(payload.OrderID, payload.TransactionStatus, body); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process callback")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
