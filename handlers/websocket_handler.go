package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"support-bot/models"
)

// WebSocketUpgrade upgrades HTTP connection to WebSocket
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleChatSocket runs the chat pipeline over a websocket: each incoming
// frame is a ChatRequest and each reply a ChatResponse. Frames without a
// session id reuse one minted for the connection.
func (h *Handler) HandleChatSocket(c *websocket.Conn) {
	connSessionID := uuid.New().String()

	var writeMu sync.Mutex
	writeJSON := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		c.SetWriteDeadline(time.Now().Add(10 * time.Second))
		return c.WriteJSON(v)
	}

	slog.Info("Chat socket connected", "sessionID", connSessionID)

	if err := writeJSON(map[string]interface{}{
		"type":       "connected",
		"session_id": connSessionID,
	}); err != nil {
		c.Close()
		return
	}

	// Ping keepalive until the read loop exits.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(54 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				writeMu.Lock()
				c.SetWriteDeadline(time.Now().Add(10 * time.Second))
				err := c.WriteMessage(websocket.PingMessage, nil)
				writeMu.Unlock()
				if err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			slog.Info("Chat socket closed", "sessionID", connSessionID)
			return
		}

		var req models.ChatRequest
		if err := json.Unmarshal(data, &req); err != nil {
			writeJSON(map[string]string{"error": "Invalid chat frame"})
			continue
		}

		if req.SessionID == "" {
			req.SessionID = connSessionID
		}
		if req.Language == "" {
			req.Language = "en"
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		resp, err := h.runChatTurn(ctx, req)
		cancel()
		if err != nil {
			slog.Error("Chat socket turn failed", "error", err, "sessionID", req.SessionID)
			writeJSON(map[string]string{"error": err.Error()})
			continue
		}

		if err := writeJSON(resp); err != nil {
			slog.Error("Failed to write chat socket reply", "error", err)
			return
		}
	}
}
