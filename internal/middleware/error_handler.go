package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CustomErrorHandler renders every error as a JSON envelope. Failures stay
// local to the triggering request; nothing here retries or escalates.
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	errorMessage := ""

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" {
			errorMessage = msg
		}
	}

	if errorMessage == "" {
		switch code {
		case http.StatusNotFound:
			errorMessage = "The resource you're looking for doesn't exist."
		case http.StatusForbidden:
			errorMessage = "You don't have permission to access this resource."
		case http.StatusUnauthorized:
			errorMessage = "Please log in to continue."
		case http.StatusBadRequest:
			errorMessage = "The request could not be processed."
		default:
			errorMessage = "Something went wrong. Please try again later."
		}
	}

	c.Logger().Error(err)

	if jsonErr := c.JSON(code, map[string]string{"error": errorMessage}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
