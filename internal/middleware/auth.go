package middleware

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"deals4property_echo/internal/models"
)

const userContextKey = "user"

// RequireAuth verifies the Firebase session cookie and resolves it to a User
// row. The resolved row (with subscriptions preloaded) is what every handler
// downstream trusts; nothing is taken from client-supplied ids.
func RequireAuth(authClient *auth.Client, db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authClient == nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "auth is not configured")
			}

			cookie, err := c.Cookie("session")
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Please log in to continue.")
			}

			decodedToken, err := authClient.VerifySessionCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				clearCookie := &http.Cookie{
					Name:     "session",
					Value:    "",
					MaxAge:   -1,
					HttpOnly: true,
					Path:     "/",
				}
				c.SetCookie(clearCookie)
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired, please log in again.")
			}

			var user models.User
			err = db.Preload("SubscriptionLocations").First(&user, "id = ?", decodedToken.UID).Error
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					// Identity exists but no profile row; treat as signed out
					return echo.NewHTTPError(http.StatusUnauthorized, "Account not found.")
				}
				return err
			}

			c.Set(userContextKey, &user)

			return next(c)
		}
	}
}

// RequireAdmin gates admin routes at the request boundary. The admin flag is
// read from the server-side user row, never from the client.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Please log in to continue.")
			}
			if !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required.")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil
func CurrentUser(c echo.Context) *models.User {
	val := c.Get(userContextKey)
	if val == nil {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
