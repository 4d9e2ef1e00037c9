package http

import (
	"strconv"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Disha-01-alt/PollutionBackend/internal/observability"
	"github.com/Disha-01-alt/PollutionBackend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, pollutionSvc *service.PollutionService, metrics *observability.Metrics) {
	handler := NewHandler(pollutionSvc)

	if metrics != nil {
		app.Use(requestCounter(metrics))
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// API documentation
	app.Get("/", handler.Root)
	app.Get("/api", handler.APIDoc)

	api := app.Group("/api")
	{
		api.Get("/health", handler.HealthCheck)
		api.Get("/pollution", handler.GetPollution)
		api.Get("/cities", handler.GetCities)
		api.Get("/pollution-types", handler.GetPollutionTypes)
	}
}

// requestCounter counts served requests by route and status code
func requestCounter(metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		metrics.RequestsTotal.WithLabelValues(
			c.Path(), strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}
