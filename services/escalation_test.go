package services

import (
	"testing"

	"support-bot/models"
)

func TestDetermineEscalationLevelGreetingsStayNormal(t *testing.T) {
	queries := []string{
		"Hello there",
		"  hi  ",
		"thank you so much",
		"who are you exactly?",
	}
	for _, q := range queries {
		if got := DetermineEscalationLevel(q, nil); got != models.EscalationNormal {
			t.Fatalf("DetermineEscalationLevel(%q) = %q, want %q", q, got, models.EscalationNormal)
		}
	}
}

func TestDetermineEscalationLevelKeywordsEscalateRegardlessOfHistory(t *testing.T) {
	histories := [][]models.Conversation{
		nil,
		{{EscalationLevel: models.EscalationNormal}},
		{{EscalationLevel: models.EscalationEscalated}},
	}
	for _, history := range histories {
		if got := DetermineEscalationLevel("i want a refund", history); got != models.EscalationEscalated {
			t.Fatalf("DetermineEscalationLevel(refund query) = %q, want %q", got, models.EscalationEscalated)
		}
	}
}

func TestDetermineEscalationLevelStickyAcrossTurns(t *testing.T) {
	history := []models.Conversation{
		{UserQuery: "this order is a scam", EscalationLevel: models.EscalationEscalated},
	}
	// Neutral follow-up: no greeting, no keyword, no negative pattern.
	if got := DetermineEscalationLevel("where is order 12345", history); got != models.EscalationEscalated {
		t.Fatalf("escalation not sticky: got %q, want %q", got, models.EscalationEscalated)
	}
}

func TestDetermineEscalationLevelGreetingOverridesStickiness(t *testing.T) {
	history := []models.Conversation{
		{EscalationLevel: models.EscalationEscalated},
	}
	if got := DetermineEscalationLevel("thanks", history); got != models.EscalationNormal {
		t.Fatalf("greeting after escalated turn = %q, want %q", got, models.EscalationNormal)
	}
}

func TestDetermineEscalationLevelOnlyLastTurnCounts(t *testing.T) {
	history := []models.Conversation{
		{EscalationLevel: models.EscalationEscalated},
		{EscalationLevel: models.EscalationNormal},
	}
	if got := DetermineEscalationLevel("where is order 12345", history); got != models.EscalationNormal {
		t.Fatalf("older escalated turn leaked through: got %q, want %q", got, models.EscalationNormal)
	}
}

func TestDetermineEscalationLevelNegativePatterns(t *testing.T) {
	queries := []string{
		"why can't i log in to my account",
		"i need to talk to a person about my order",
		"i want to speak to someone right now",
	}
	for _, q := range queries {
		if got := DetermineEscalationLevel(q, nil); got != models.EscalationEscalated {
			t.Fatalf("DetermineEscalationLevel(%q) = %q, want %q", q, got, models.EscalationEscalated)
		}
	}
}

func TestDetermineEscalationLevelGreetingSubstringShadowsPatterns(t *testing.T) {
	// Substring matching finds "hi" inside "this", so the greeting rule fires
	// before the "this is wrong" pattern is ever checked.
	q := "this is wrong, my order never arrived"
	if got := DetermineEscalationLevel(q, nil); got != models.EscalationNormal {
		t.Fatalf("DetermineEscalationLevel(%q) = %q, want %q", q, got, models.EscalationNormal)
	}
}

func TestDetermineEscalationLevelDefaultsNormal(t *testing.T) {
	if got := DetermineEscalationLevel("where is order 12345", nil); got != models.EscalationNormal {
		t.Fatalf("neutral query = %q, want %q", got, models.EscalationNormal)
	}
}
