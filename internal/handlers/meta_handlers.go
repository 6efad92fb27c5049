package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"deals4property_echo/internal/services"
)

// MetaHandler serves the lookup data the forms need: states, cities,
// stations and localities
type MetaHandler struct {
	geodata *services.GeodataService
	cache   *services.RedisCache
}

func NewMetaHandler(geodata *services.GeodataService, cache *services.RedisCache) *MetaHandler {
	return &MetaHandler{geodata: geodata, cache: cache}
}

// States lists Indian states, cached for a day
func (h *MetaHandler) States(c echo.Context) error {
	states, err := services.GetOrSet(h.cache, c.Request().Context(), "geodata:states", 24*time.Hour, func() ([]services.State, error) {
		return h.geodata.FetchStates()
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch states")
	}
	return c.JSON(http.StatusOK, states)
}

// Cities lists the cities of one state, cached for a day
func (h *MetaHandler) Cities(c echo.Context) error {
	iso2 := c.Param("iso2")
	if iso2 == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "state code is required")
	}

	cities, err := services.GetOrSet(h.cache, c.Request().Context(), "geodata:cities:"+iso2, 24*time.Hour, func() ([]services.City, error) {
		return h.geodata.FetchCities(iso2)
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cities")
	}
	return c.JSON(http.StatusOK, cities)
}

// Stations returns the known stations for a city
func (h *MetaHandler) Stations(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city is required")
	}
	stations := services.StationsByCity(city)
	if stations == nil {
		stations = []string{}
	}
	return c.JSON(http.StatusOK, stations)
}

// Localities returns the known localities for a city
func (h *MetaHandler) Localities(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city is required")
	}
	localities := services.LocalitiesByCity(city)
	if localities == nil {
		localities = []string{}
	}
	return c.JSON(http.StatusOK, localities)
}
