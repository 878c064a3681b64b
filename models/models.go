package models

import "time"

// Escalation levels assigned to every conversation turn.
const (
	EscalationNormal    = "normal"
	EscalationEscalated = "escalated"
)

// FAQ represents one entry of the static FAQ corpus. Records are loaded once at
// startup and never mutated.
type FAQ struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords,omitempty"`
}

// Conversation represents a single turn: one user query and the bot's reply.
type Conversation struct {
	UserQuery       string    `json:"user_query"`
	BotResponse     string    `json:"bot_response"`
	EscalationLevel string    `json:"escalation_level"`
	Timestamp       time.Time `json:"timestamp"`
}

// ChatSession groups the conversation turns of one client-supplied session id.
type ChatSession struct {
	SessionID    string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// SessionInfo is the listing view of a session.
type SessionInfo struct {
	SessionID         string    `json:"session_id"`
	CreatedAt         time.Time `json:"created_at"`
	LastActivity      time.Time `json:"last_activity"`
	ConversationCount int       `json:"conversation_count"`
}

// ChatRequest is the body of POST /api/chat and of websocket chat frames.
type ChatRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
}

// ChatResponse is the reply for a chat request.
type ChatResponse struct {
	Response        string `json:"response"`
	SessionID       string `json:"session_id"`
	EscalationLevel string `json:"escalation_level"`
	Timestamp       string `json:"timestamp"`
}

// Reply is the responder's result before it is bound to a session.
type Reply struct {
	Text            string
	EscalationLevel string
}
