package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"support-bot/config"
)

const geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// Generator is the boundary to the external text-generation capability. A
// call either returns generated text or fails; callers are expected to fall
// back locally on failure.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiRequest represents the request to the Gemini API
type GeminiRequest struct {
	Contents         []GeminiContent  `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// GeminiContent represents one content block of the request
type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart represents a text part
type GeminiPart struct {
	Text string `json:"text"`
}

// GenerationConfig represents the fixed sampling parameters
type GenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

// GeminiResponse represents the response from the Gemini API
type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []GeminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

// GeminiClient calls the Gemini generateContent endpoint with fixed
// generation parameters. It implements Generator.
type GeminiClient struct {
	apiKey    string
	model     string
	maxTokens int
	client    *http.Client
}

func NewGeminiClient(cfg *config.Config) *GeminiClient {
	return &GeminiClient{
		apiKey:    cfg.GeminiAPIKey,
		model:     cfg.GeminiModel,
		maxTokens: cfg.GeminiMaxTokens,
		client: &http.Client{
			Timeout: 45 * time.Second, // LLM calls can be slow
		},
	}
}

// Generate sends the prompt to Gemini and returns the first candidate's text.
// Every failure mode (network, auth, quota, malformed or empty response) is
// returned as an error; there is no retry.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not configured")
	}

	requestBody := GeminiRequest{
		Contents: []GeminiContent{
			{Parts: []GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: GenerationConfig{
			MaxOutputTokens: g.maxTokens,
			Temperature:     0.7,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(geminiAPIURL, g.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		if os.IsTimeout(err) || strings.Contains(err.Error(), "deadline exceeded") {
			slog.Error("Gemini API timeout", "error", err, "promptLength", len(prompt))
			return "", fmt.Errorf("Gemini API timeout: %w", err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("Gemini API error", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("Gemini API error: %s", resp.Status)
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		text := geminiResp.Candidates[0].Content.Parts[0].Text
		slog.Info("Gemini response generated",
			"promptTokens", geminiResp.UsageMetadata.PromptTokenCount,
			"candidateTokens", geminiResp.UsageMetadata.CandidatesTokenCount,
		)
		return text, nil
	}

	return "", fmt.Errorf("no response content from Gemini")
}
