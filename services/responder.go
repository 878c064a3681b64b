package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"support-bot/models"
)

// historyWindow is how many prior turns are serialized into the prompt.
const historyWindow = 5

// languagePrompts maps a language tag to the system instruction block. Unknown
// tags fall back to English.
var languagePrompts = map[string]string{
	"en": "You are a helpful Fashion Forward customer support assistant. Answer the user's question based on the FAQ data provided. If you cannot find a relevant answer, escalate to human support.",
	"hi": "आप एक उपयोगी फैशन फॉरवर्ड ग्राहक सहायता सहायक हैं। प्रदान किए गए FAQ डेटा के आधार पर उपयोगकर्ता के प्रश्न का उत्तर दें। यदि आप कोई प्रासंगिक उत्तर नहीं खोज सकते हैं, तो मानव सहायता में एस्केलेट करें।",
	"es": "Eres un asistente de soporte al cliente útil de Fashion Forward. Responde la pregunta del usuario basándote en los datos de FAQ proporcionados. Si no puedes encontrar una respuesta relevante, escala al soporte humano.",
	"fr": "Vous êtes un assistant de support client utile de Fashion Forward. Répondez à la question de l'utilisateur en vous basant sur les données FAQ fournies. Si vous ne trouvez pas de réponse pertinente, escaladez vers le support humain.",
}

// greetings is the short list the fallback path uses to pick the welcome reply.
var greetings = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}

const (
	greetingReply = "Hello! Welcome to Fashion Forward! I'm here to help you with any questions about our products, shipping, returns, or anything else. How can I assist you today?"
	degradedReply = "I apologize, but I'm experiencing technical difficulties. Please try again or contact our support team directly at support@fashionforward.com"
)

// Responder orchestrates the response pipeline: escalation classification,
// prompt assembly, the single LLM attempt, and the local fallback. It never
// mutates session state; the caller persists the resulting turn.
type Responder struct {
	faqs *FAQStore
	llm  Generator
}

func NewResponder(faqs *FAQStore, llm Generator) *Responder {
	return &Responder{faqs: faqs, llm: llm}
}

// Respond produces the bot reply for a query. LLM failures are swallowed and
// converted to a degraded reply; this method never returns an error.
func (r *Responder) Respond(ctx context.Context, query string, history []models.Conversation, language string) models.Reply {
	// Computed up front so the success path reports it even when the final
	// text comes from the model.
	level := DetermineEscalationLevel(query, history)

	prompt := r.buildPrompt(query, history, language)

	text, err := r.llm.Generate(ctx, prompt)
	if err != nil {
		slog.Error("LLM call failed, using local fallback", "error", err)
		llmFailures.Inc()
		return r.fallback(query)
	}

	return models.Reply{
		Text:            strings.TrimSpace(text),
		EscalationLevel: level,
	}
}

// buildPrompt composes the instruction block, FAQ corpus, recent history and
// the raw query into a single prompt.
func (r *Responder) buildPrompt(query string, history []models.Conversation, language string) string {
	systemPrompt, ok := languagePrompts[language]
	if !ok {
		systemPrompt = languagePrompts["en"]
		language = "en"
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nFAQ Data:\n")
	b.WriteString(r.faqs.Context())
	b.WriteString("\n\n")

	if len(history) > 0 {
		recent := history
		if len(recent) > historyWindow {
			recent = recent[len(recent)-historyWindow:]
		}
		b.WriteString("Previous conversation:\n")
		for _, conv := range recent {
			fmt.Fprintf(&b, "User: %s\nBot: %s\n", conv.UserQuery, conv.BotResponse)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "User Query: %s\n\n", query)
	fmt.Fprintf(&b, "Please provide a helpful response in %s. If the query cannot be answered from the FAQ data, respond with \"I need to escalate this to human support. Please hold while I connect you with a specialist.\"\n\n", language)
	b.WriteString("Guidelines:\n")
	b.WriteString("- Always be polite and professional\n")
	b.WriteString("- Keep responses concise but informative\n")
	b.WriteString("- Use the conversation history to provide better context-aware responses\n")
	b.WriteString("- If the user is asking about Fashion Forward products, services, or policies, use the FAQ data\n")
	b.WriteString("- If the query is about something not covered in FAQs, escalate to human support\n")

	return b.String()
}

// fallback answers locally when the LLM is unavailable: best FAQ match first,
// then a canned greeting, then the degraded reply.
func (r *Responder) fallback(query string) models.Reply {
	q := strings.ToLower(strings.TrimSpace(query))

	if match, _ := BestMatch(q, r.faqs.All()); match != nil {
		fallbackReplies.WithLabelValues("faq").Inc()
		return models.Reply{Text: match.Answer, EscalationLevel: models.EscalationNormal}
	}

	if containsAny(q, greetings) {
		fallbackReplies.WithLabelValues("greeting").Inc()
		return models.Reply{Text: greetingReply, EscalationLevel: models.EscalationNormal}
	}

	fallbackReplies.WithLabelValues("degraded").Inc()
	return models.Reply{Text: degradedReply, EscalationLevel: models.EscalationEscalated}
}
