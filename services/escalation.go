package services

import (
	"strings"

	"support-bot/models"
)

// The classifier is data-driven: each list below is checked by substring
// containment against the normalized query, in the order the rules appear in
// DetermineEscalationLevel. Order within a list does not matter.

// normalPhrases are conversational queries that never escalate, even after an
// escalated turn.
var normalPhrases = []string{
	"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	"how are you", "how are you doing", "what's up", "thanks", "thank you",
	"bye", "goodbye", "see you", "have a good day", "nice to meet you",
	"what can you help", "what do you do", "who are you", "what is this",
	"help", "i need help", "can you help", "do you work here",
	"are you a robot", "are you real", "what's your name", "tell me about yourself",
}

// escalationKeywords flag issues that need human handling.
var escalationKeywords = []string{
	"complaint", "refund", "cancel", "dispute", "problem", "issue",
	"not working", "broken", "defective", "angry", "frustrated",
	"manager", "supervisor", "human", "agent", "representative",
	"sue", "lawsuit", "legal", "attorney", "lawyer", "court",
	"fraud", "scam", "stolen", "hacked", "security breach",
	"discrimination", "harassment", "inappropriate", "unethical",
}

// escalationPatterns catch negative phrasing that the keyword list misses.
// The "this is ..." entries are unreachable as written: any query containing
// "this" also contains "hi" and classifies as normal at the greeting rule.
var escalationPatterns = []string{
	"why is my", "why can't i", "why won't", "why doesn't",
	"i can't", "i won't", "i don't", "it doesn't", "it won't",
	"this is wrong", "this is incorrect", "this is not working",
	"i want to speak to", "i need to talk to", "i demand to speak to",
}

// DetermineEscalationLevel classifies a query as normal or escalated. Rules
// apply in priority order: greetings win over everything, explicit escalation
// keywords win over history, and escalation is sticky across a session once
// the previous turn escalated. Pure function of its inputs.
func DetermineEscalationLevel(query string, history []models.Conversation) string {
	q := strings.ToLower(strings.TrimSpace(query))

	if containsAny(q, normalPhrases) {
		return models.EscalationNormal
	}

	if containsAny(q, escalationKeywords) {
		return models.EscalationEscalated
	}

	if len(history) > 0 && history[len(history)-1].EscalationLevel == models.EscalationEscalated {
		return models.EscalationEscalated
	}

	if containsAny(q, escalationPatterns) {
		return models.EscalationEscalated
	}

	return models.EscalationNormal
}

func containsAny(query string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(query, p) {
			return true
		}
	}
	return false
}
