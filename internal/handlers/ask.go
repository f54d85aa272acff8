package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/services"
)

// AskHandler serves the web chat endpoint
type AskHandler struct {
	engine *services.DialogueEngine
}

// NewAskHandler creates a new ask handler
func NewAskHandler(engine *services.DialogueEngine) *AskHandler {
	return &AskHandler{engine: engine}
}

// AskRequest is one user turn from the web frontend. An empty question
// signals a fresh start turn.
type AskRequest struct {
	UserID      string `json:"user_id"`
	Question    string `json:"question"`
	DisplayName string `json:"display_name"`
}

// HandleAsk processes one dialogue turn and returns the response envelope
func (h *AskHandler) HandleAsk(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing user_id",
		})
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = "Visitor"
	}

	log.Printf("💬 Turn from %s: %q", req.UserID, req.Question)
	response := h.engine.Process(req.UserID, req.Question, displayName)
	return c.JSON(response)
}

// HandleNewSession issues a fresh opaque user id for a web session
func (h *AskHandler) HandleNewSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id": uuid.NewString(),
	})
}
