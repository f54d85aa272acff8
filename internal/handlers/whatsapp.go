package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/services"
)

// WhatsAppHandler feeds webhook messages into the dialogue engine
type WhatsAppHandler struct {
	engine        *services.DialogueEngine
	twilioService *services.TwilioService
}

// NewWhatsAppHandler creates a new WhatsApp handler. A nil twilio service
// is tolerated: responses are logged instead of sent.
func NewWhatsAppHandler(engine *services.DialogueEngine, twilioService *services.TwilioService) *WhatsAppHandler {
	return &WhatsAppHandler{
		engine:        engine,
		twilioService: twilioService,
	}
}

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid  string `form:"MessageSid"`
	AccountSid  string `form:"AccountSid"`
	From        string `form:"From"` // whatsapp:+919876543210
	To          string `form:"To"`
	Body        string `form:"Body"`
	ProfileName string `form:"ProfileName"`
}

// HandleWebhook processes incoming WhatsApp messages
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	// Status callbacks arrive on the same URL with no body text
	if payload.From == "" {
		return c.SendStatus(fiber.StatusOK)
	}

	from := strings.TrimPrefix(payload.From, "whatsapp:")
	log.Printf("📱 WhatsApp message from %s: %s", from, payload.Body)

	displayName := payload.ProfileName
	if displayName == "" {
		displayName = "Visitor"
	}

	response := h.engine.Process(from, payload.Body, displayName)

	if h.twilioService != nil {
		if err := h.twilioService.SendWhatsAppMessage(from, flattenResponse(response)); err != nil {
			log.Printf("❌ Failed to send WhatsApp response: %v", err)
		}
	} else {
		log.Printf("📤 Response (not sent - Twilio not configured): %s", response.Text)
	}

	return c.SendStatus(fiber.StatusOK)
}

// flattenResponse renders the envelope for a text-only channel: quick
// reply buttons become "label - value" lines under the text.
func flattenResponse(r *models.Response) string {
	if len(r.Buttons) == 0 {
		return r.Text
	}
	lines := []string{r.Text, ""}
	for _, b := range r.Buttons {
		lines = append(lines, b.Label+" - "+b.Value)
	}
	return strings.Join(lines, "\n")
}
