package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"support-bot/models"
)

// FAQStore holds the static FAQ corpus. It is loaded once at startup and
// read-only afterwards; record order follows the source file and is the
// tie-break order for fallback matching.
type FAQStore struct {
	faqs []models.FAQ
}

type faqFile struct {
	FAQs []models.FAQ `json:"faqs"`
}

// LoadFAQs reads the FAQ corpus from a JSON file. A missing file yields an
// empty corpus so the service can still run on canned replies.
func LoadFAQs(path string) (*FAQStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("FAQ file not found, starting with an empty corpus", "path", path)
			return &FAQStore{}, nil
		}
		return nil, fmt.Errorf("failed to read FAQ file: %w", err)
	}

	var file faqFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse FAQ file %s: %w", path, err)
	}

	slog.Info("FAQ corpus loaded", "path", path, "count", len(file.FAQs))
	return &FAQStore{faqs: file.FAQs}, nil
}

// All returns the corpus in source order. Callers must not mutate the records.
func (s *FAQStore) All() []models.FAQ {
	return s.faqs
}

// Context serializes the corpus as question/answer pairs for prompt assembly.
func (s *FAQStore) Context() string {
	var b strings.Builder
	for i, faq := range s.faqs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Q: ")
		b.WriteString(faq.Question)
		b.WriteString("\nA: ")
		b.WriteString(faq.Answer)
	}
	return b.String()
}
