package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/services"
)

// AdminHandler exposes operational knobs
type AdminHandler struct {
	cache *services.DataCache
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(cache *services.DataCache) *AdminHandler {
	return &AdminHandler{cache: cache}
}

// RefreshCache force-refreshes every local info category and the parking
// collection, ignoring the freshness window
func (h *AdminHandler) RefreshCache(c *fiber.Ctx) error {
	log.Println("🔄 Admin-triggered cache refresh")

	categories := fiber.Map{}
	for _, category := range services.InfoCategories {
		h.cache.FetchCategory(category, true)
		categories[category] = len(h.cache.LocalInfo(category))
	}
	h.cache.FetchAllParkingLots(true)

	return c.JSON(fiber.Map{
		"refreshed":    true,
		"categories":   categories,
		"parking_lots": len(h.cache.ParkingLots()),
	})
}
