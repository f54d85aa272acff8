package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/handlers"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/middleware"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/services"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, engine *services.DialogueEngine, cache *services.DataCache,
	states services.StateStore, twilioService *services.TwilioService) {

	askHandler := handlers.NewAskHandler(engine)
	whatsappHandler := handlers.NewWhatsAppHandler(engine, twilioService)
	adminHandler := handlers.NewAdminHandler(cache)
	healthHandler := handlers.NewHealthHandler("1.0.0", states)

	app.Get("/health", healthHandler.Check)

	// Web chat API
	api := app.Group("/api")
	api.Get("/session", askHandler.HandleNewSession)
	api.Post("/ask", askHandler.HandleAsk)

	// WhatsApp webhook - signature validation except in development
	webhooks := app.Group("/webhook")
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		webhooks.Post("/whatsapp", whatsappHandler.HandleWebhook)
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(), whatsappHandler.HandleWebhook)
	}

	// Operational endpoints
	admin := app.Group("/admin")
	admin.Post("/cache/refresh", adminHandler.RefreshCache)
}
