package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/services"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Version string
	states  services.StateStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, states services.StateStore) *HealthHandler {
	return &HealthHandler{
		Version: version,
		states:  states,
	}
}

// Check returns the health status of the service
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "OK",
		"service":         "Tiruchendur Assist Backend",
		"version":         h.Version,
		"active_sessions": h.states.Count(),
	})
}
