package services

import (
	"strings"

	"support-bot/models"
)

// matchThreshold is the minimum score a record needs to count as a match.
const matchThreshold = 0.3

// BestMatch scores every FAQ record against the query by partial word overlap
// and returns the highest-scoring record when its score exceeds the threshold.
// Ties keep the first record in corpus order (comparison is strict). Scores
// are additive and not capped at 1.0; duplicate query words can push a score
// past 1, which only affects ranking.
func BestMatch(query string, faqs []models.FAQ) (*models.FAQ, float64) {
	queryWords := strings.Fields(strings.ToLower(query))

	var best *models.FAQ
	bestScore := 0.0

	for i := range faqs {
		score := similarity(queryWords, &faqs[i])
		if score > bestScore {
			bestScore = score
			best = &faqs[i]
		}
	}

	if best == nil || bestScore <= matchThreshold {
		return nil, bestScore
	}
	return best, bestScore
}

// similarity weights question-text overlap at 0.4 and keyword overlap at 0.6.
// An empty query scores 0 against every record.
func similarity(queryWords []string, faq *models.FAQ) float64 {
	if len(queryWords) == 0 {
		return 0
	}

	questionWords := strings.Fields(strings.ToLower(faq.Question))
	questionMatches := 0
	for _, word := range queryWords {
		if overlapsAny(word, questionWords) {
			questionMatches++
		}
	}
	score := float64(questionMatches) / float64(len(queryWords)) * 0.4

	if len(faq.Keywords) > 0 {
		keywordMatches := 0
		for _, word := range queryWords {
			if overlapsAnyFold(word, faq.Keywords) {
				keywordMatches++
			}
		}
		score += float64(keywordMatches) / float64(len(queryWords)) * 0.6
	}

	return score
}

// overlapsAny reports whether word is a substring of any candidate or any
// candidate is a substring of word. Candidates must already be lowercase.
func overlapsAny(word string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(c, word) || strings.Contains(word, c) {
			return true
		}
	}
	return false
}

func overlapsAnyFold(word string, candidates []string) bool {
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if strings.Contains(lc, word) || strings.Contains(word, lc) {
			return true
		}
	}
	return false
}
