package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"support-bot/models"
	"support-bot/services"
)

// historyLimit is how many prior turns are handed to the responder.
const historyLimit = 10

// Handler carries the request-path dependencies. The store is owned state
// passed by reference, never a package-level singleton.
type Handler struct {
	store     *services.Store
	responder *services.Responder
}

func New(store *services.Store, responder *services.Responder) *Handler {
	return &Handler{store: store, responder: responder}
}

// Chat handles POST /api/chat: resolve the session, generate a reply, record
// the turn and return it.
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Language == "" {
		req.Language = "en"
	}
	// The web UI mints its own session id; bare API clients may omit it.
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	resp, err := h.runChatTurn(ctx, req)
	if err != nil {
		slog.Error("Chat request failed", "error", err, "sessionID", req.SessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// runChatTurn is the pipeline shared by the HTTP and websocket chat paths.
func (h *Handler) runChatTurn(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	h.store.GetOrCreate(req.SessionID)

	history, err := h.store.History(req.SessionID, historyLimit)
	if err != nil {
		return nil, err
	}

	reply := h.responder.Respond(ctx, req.Query, history, req.Language)

	now := time.Now().UTC()
	turn := models.Conversation{
		UserQuery:       req.Query,
		BotResponse:     reply.Text,
		EscalationLevel: reply.EscalationLevel,
		Timestamp:       now,
	}
	if err := h.store.AppendTurn(req.SessionID, turn); err != nil {
		return nil, err
	}

	services.CountChatRequest(reply.EscalationLevel)
	slog.Info("Chat turn completed",
		"sessionID", req.SessionID,
		"language", req.Language,
		"escalationLevel", reply.EscalationLevel,
	)

	return &models.ChatResponse{
		Response:        reply.Text,
		SessionID:       req.SessionID,
		EscalationLevel: reply.EscalationLevel,
		Timestamp:       now.Format(time.RFC3339),
	}, nil
}
