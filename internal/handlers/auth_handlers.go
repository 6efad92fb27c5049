package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"deals4property_echo/internal/listings"
	"deals4property_echo/internal/middleware"
	"deals4property_echo/internal/models"
)

// AuthHandler handles signup, login and profile endpoints
type AuthHandler struct {
	authClient *auth.Client
	db         *gorm.DB
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authClient *auth.Client, db *gorm.DB) *AuthHandler {
	return &AuthHandler{authClient: authClient, db: db}
}

// SignupRequest is the broker registration payload. Location selections made
// during signup are stored unstamped; they stay locked until a checkout
// settles them.
type SignupRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FullName    string   `json:"full_name"`
	Phone       string   `json:"phone"`
	ReraNumber  string   `json:"rera_number"`
	State       string   `json:"state"`
	City        string   `json:"city"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	LocationIDs []string `json:"location_ids"`
}

// HandleSignup creates the Firebase identity and the profile row. New
// accounts are never admins; the flag can only be flipped directly in the
// database.
func (h *AuthHandler) HandleSignup(c echo.Context) error {
	if h.authClient == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "auth is not configured")
	}

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid signup payload")
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email, password and full name are required")
	}
	if !listings.ValidContactNumber(req.Phone) {
		return echo.NewHTTPError(http.StatusBadRequest, "Please enter a valid 10-digit phone number")
	}

	params := (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.FullName)

	record, err := h.authClient.CreateUser(c.Request().Context(), params)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create account: "+err.Error())
	}

	user := models.User{
		ID:         record.UID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		ReraNumber: req.ReraNumber,
		State:      req.State,
		City:       req.City,
		Lat:        req.Lat,
		Lng:        req.Lng,
		IsAdmin:    false,
	}
	for _, id := range req.LocationIDs {
		loc, ok := listings.CatalogByID(id)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown location id "+id)
		}
		user.SubscriptionLocations = append(user.SubscriptionLocations, models.SubscriptionLocation{
			UserID:     record.UID,
			LocationID: loc.ID,
			Name:       loc.Name,
			Price:      loc.Price,
		})
	}
	if err := h.db.Create(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create profile")
	}

	return c.JSON(http.StatusCreated, user)
}

// HandleLogin verifies the Firebase ID token and creates a session cookie
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.authClient == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "auth is not configured")
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	if _, err := h.authClient.VerifyIDToken(c.Request().Context(), tokenString); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	// Create Session Cookie (valid for 5 days)
	expiresIn := time.Hour * 24 * 5
	cookieValue, err := h.authClient.SessionCookie(c.Request().Context(), tokenString, expiresIn)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	cookie := &http.Cookie{
		Name:     "session",
		Value:    cookieValue,
		MaxAge:   int(expiresIn.Seconds()),
		HttpOnly: true,
		Secure:   os.Getenv("ENV") == "production",
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// HandleLogout clears the session cookie
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	cookie := &http.Cookie{
		Name:     "session",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// Profile returns the authenticated user's row
func (h *AuthHandler) Profile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	return c.JSON(http.StatusOK, user)
}

// ProfileUpdateRequest carries the editable profile fields. Admin flag and
// subscriptions are deliberately absent; those change through their own
// paths.
type ProfileUpdateRequest struct {
	FullName   string  `json:"full_name"`
	Phone      string  `json:"phone"`
	ReraNumber string  `json:"rera_number"`
	State      string  `json:"state"`
	City       string  `json:"city"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// UpdateProfile updates the editable profile fields
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile payload")
	}

	if req.FullName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "full name is required")
	}
	if !listings.ValidContactNumber(req.Phone) {
		return echo.NewHTTPError(http.StatusBadRequest, "Please enter a valid 10-digit phone number")
	}

	user.FullName = req.FullName
	user.Phone = req.Phone
	user.ReraNumber = req.ReraNumber
	user.State = req.State
	user.City = req.City
	user.Lat = req.Lat
	user.Lng = req.Lng

	if err := h.db.Save(user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update profile")
	}

	if h.authClient != nil {
		// Keep the identity provider's display name in sync; best effort
		update := (&auth.UserToUpdate{}).DisplayName(req.FullName)
		if _, err := h.authClient.UpdateUser(c.Request().Context(), user.ID, update); err != nil {
			c.Logger().Warnf("failed to update display name for %s: %v", user.ID, err)
		}
	}

	return c.JSON(http.StatusOK, user)
}
