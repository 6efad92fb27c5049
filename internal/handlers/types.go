package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"deals4property_echo/internal/models"
)

// parseCategory maps the :category path segment to a property category
func parseCategory(raw string) (models.PropertyCategory, error) {
	switch raw {
	case "resale":
		return models.CategoryResale, nil
	case "rental":
		return models.CategoryRental, nil
	}
	return "", echo.NewHTTPError(http.StatusBadRequest, "category must be resale or rental")
}
