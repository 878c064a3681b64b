package services

import (
	"errors"
	"sort"
	"sync"
	"time"

	"support-bot/models"
)

// ErrSessionNotFound is returned for operations on a session id that was
// never created or has been deleted.
var ErrSessionNotFound = errors.New("session not found")

// Store owns all session and conversation state for the lifetime of the
// process. A session and its turn list are created and destroyed together;
// no other component mutates either map. One lock covers the whole mutation
// surface, which is adequate at this scale.
type Store struct {
	mu            sync.RWMutex
	sessions      map[string]*models.ChatSession
	conversations map[string][]models.Conversation
}

func NewStore() *Store {
	return &Store{
		sessions:      make(map[string]*models.ChatSession),
		conversations: make(map[string][]models.Conversation),
	}
}

// GetOrCreate returns the session for sessionID, creating it on first use.
// Any access through this path counts as activity.
func (s *Store) GetOrCreate(sessionID string) *models.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	session, ok := s.sessions[sessionID]
	if !ok {
		session = &models.ChatSession{
			SessionID: sessionID,
			CreatedAt: now,
		}
		s.sessions[sessionID] = session
		s.conversations[sessionID] = []models.Conversation{}
		activeSessions.Inc()
	}
	session.LastActivity = now

	snapshot := *session
	return &snapshot
}

// AppendTurn appends a completed turn to the session's history.
func (s *Store) AppendTurn(sessionID string, conv models.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	s.conversations[sessionID] = append(s.conversations[sessionID], conv)
	return nil
}

// History returns the most recent limit turns in chronological order. A
// limit <= 0 returns the full history. The result is a copy.
func (s *Store) History(sessionID string, limit int) ([]models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, ErrSessionNotFound
	}

	conns := s.conversations[sessionID]
	if limit > 0 && len(conns) > limit {
		conns = conns[len(conns)-limit:]
	}

	out := make([]models.Conversation, len(conns))
	copy(out, conns)
	return out, nil
}

// ListSessions returns a listing of every session with its turn count,
// oldest first. Session id breaks creation-time ties.
func (s *Store) ListSessions() []models.SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SessionInfo, 0, len(s.sessions))
	for id, session := range s.sessions {
		out = append(out, models.SessionInfo{
			SessionID:         id,
			CreatedAt:         session.CreatedAt,
			LastActivity:      session.LastActivity,
			ConversationCount: len(s.conversations[id]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].SessionID < out[j].SessionID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Delete removes a session and all its turns.
func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	delete(s.conversations, sessionID)
	activeSessions.Dec()
	return nil
}
