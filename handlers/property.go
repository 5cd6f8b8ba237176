package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"realestate-listings/models"
	"realestate-listings/services"
	"realestate-listings/utils"
)

const version = "1.0.0"

type PropertyController struct {
	service services.PropertyService
	logger  *slog.Logger
}

func NewPropertyController(service services.PropertyService, logger *slog.Logger) *PropertyController {
	return &PropertyController{service: service, logger: logger}
}

// ListProperties handles GET /api/properties. Validation runs before any
// service call; a bad filter never reaches the store.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	filter, parseErrors := parseFilter(c)

	validationErrors := append(parseErrors, utils.ValidateFilter(filter)...)
	if len(validationErrors) > 0 {
		return c.JSON(http.StatusBadRequest,
			models.Fail[models.Page[models.PropertySummary]]("Invalid filter parameters", validationErrors...))
	}

	pc.logger.Info("listing properties",
		"name", filter.Name,
		"address", filter.Address,
		"pageNumber", filter.PageNumber,
		"pageSize", filter.PageSize,
	)

	result := pc.service.ListProperties(c.Request().Context(), filter)
	if !result.Success {
		pc.logger.Warn("failed to list properties", "message", result.Message, "errors", result.Errors)
		return c.JSON(http.StatusInternalServerError, result)
	}
	return c.JSON(http.StatusOK, result)
}

// GetProperty handles GET /api/properties/:id.
func (pc *PropertyController) GetProperty(c echo.Context) error {
	id := c.Param("id")
	if strings.TrimSpace(id) == "" {
		return c.JSON(http.StatusBadRequest,
			models.Fail[models.PropertyDetail](services.MsgPropertyIDRequired, "Invalid property ID"))
	}

	pc.logger.Info("getting property", "id", id)

	result := pc.service.GetProperty(c.Request().Context(), id)
	if !result.Success {
		if result.Message == services.MsgPropertyNotFound {
			return c.JSON(http.StatusNotFound, result)
		}
		pc.logger.Warn("failed to get property", "id", id, "message", result.Message)
		return c.JSON(http.StatusInternalServerError, result)
	}
	return c.JSON(http.StatusOK, result)
}

// HealthCheck handles GET /api/properties/health. No dependencies, no failure
// path.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   version,
	})
}

// parseFilter reads the query parameters, applying the documented defaults.
// Malformed numeric values are collected as validation messages rather than
// dropped silently.
func parseFilter(c echo.Context) (models.PropertyFilter, []string) {
	filter := models.PropertyFilter{
		Name:       c.QueryParam("name"),
		Address:    c.QueryParam("address"),
		PageNumber: 1,
		PageSize:   10,
	}

	var errs []string
	if raw := c.QueryParam("minPrice"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &value
		} else {
			errs = append(errs, "minPrice must be a number")
		}
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &value
		} else {
			errs = append(errs, "maxPrice must be a number")
		}
	}
	if raw := c.QueryParam("pageNumber"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			filter.PageNumber = value
		} else {
			errs = append(errs, "pageNumber must be an integer")
		}
	}
	if raw := c.QueryParam("pageSize"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			filter.PageSize = value
		} else {
			errs = append(errs, "pageSize must be an integer")
		}
	}
	return filter, errs
}
