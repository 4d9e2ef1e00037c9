package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Disha-01-alt/PollutionBackend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	pollutionSvc *service.PollutionService
}

// NewHandler creates a new handler
func NewHandler(pollutionSvc *service.PollutionService) *Handler {
	return &Handler{pollutionSvc: pollutionSvc}
}

func endpointList() []fiber.Map {
	return []fiber.Map{
		{"path": "/api/pollution", "description": "Get all pollution data with optional filters"},
		{"path": "/api/cities", "description": "Get list of all cities"},
		{"path": "/api/pollution-types", "description": "Get list of all pollution types"},
	}
}

// Root returns the API metadata document
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "EcoMonitor API",
		"version":     "1.0.0",
		"description": "Pure API for pollution data in Indian cities",
		"note":        "Frontend must be run separately",
		"endpoints":   endpointList(),
	})
}

// APIDoc returns the API documentation document
func (h *Handler) APIDoc(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "EcoMonitor API",
		"version":     "1.0.0",
		"description": "API for pollution data in Indian cities",
		"endpoints":   endpointList(),
	})
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "API is operational",
	})
}

// GetPollution returns pollution records with optional city and type filters
func (h *Handler) GetPollution(c *fiber.Ctx) error {
	city := c.Query("city")
	pollutionType := c.Query("type")

	result := h.pollutionSvc.GetPollution(c.Context(), city, pollutionType)
	return c.JSON(result)
}

// GetCities returns the list of all cities
func (h *Handler) GetCities(c *fiber.Ctx) error {
	return c.JSON(h.pollutionSvc.GetCities(c.Context()))
}

// GetPollutionTypes returns the list of all pollution types
func (h *Handler) GetPollutionTypes(c *fiber.Ctx) error {
	return c.JSON(h.pollutionSvc.GetPollutionTypes(c.Context()))
}
