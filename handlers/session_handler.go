package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"support-bot/services"
)

// GetSessionHistory handles GET /api/sessions/:sessionID/history.
func (h *Handler) GetSessionHistory(c *fiber.Ctx) error {
	sessionID := c.Params("sessionID")

	conversations, err := h.store.History(sessionID, 0)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		slog.Error("Failed to load session history", "error", err, "sessionID", sessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session history",
		})
	}

	return c.JSON(fiber.Map{
		"session_id":    sessionID,
		"conversations": conversations,
	})
}

// ListSessions handles GET /api/sessions.
func (h *Handler) ListSessions(c *fiber.Ctx) error {
	return c.JSON(h.store.ListSessions())
}

// DeleteSession handles DELETE /api/sessions/:sessionID. The session and its
// conversations are removed together.
func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionID")

	if err := h.store.Delete(sessionID); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		slog.Error("Failed to delete session", "error", err, "sessionID", sessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete session",
		})
	}

	slog.Info("Session deleted", "sessionID", sessionID)
	return c.JSON(fiber.Map{
		"message": "Session deleted successfully",
	})
}
