package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "supportbot",
		Name:      "chat_requests_total",
		Help:      "Chat requests by escalation level of the reply.",
	}, []string{"escalation_level"})

	llmFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "supportbot",
		Name:      "llm_failures_total",
		Help:      "External LLM calls that failed and triggered the local fallback.",
	})

	fallbackReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "supportbot",
		Name:      "fallback_replies_total",
		Help:      "Locally generated replies by source (faq, greeting, degraded).",
	}, []string{"source"})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "supportbot",
		Name:      "active_sessions",
		Help:      "Number of live chat sessions.",
	})
)

// CountChatRequest records a completed chat turn.
func CountChatRequest(escalationLevel string) {
	chatRequests.WithLabelValues(escalationLevel).Inc()
}
