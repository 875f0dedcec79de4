package services

import (
	"context"
	"fmt"
	"net/http"

	"github/itish2003/studynotes/config"

	"google.golang.org/genai"
)

// SummaryOptions bounds a single summarization call.
type SummaryOptions struct {
	MinTokens     int
	MaxTokens     int
	Deterministic bool
}

// Summarizer condenses a chunk of text. Implementations call an external
// model and may be slow; they must honour ctx.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error)
	Name() string
}

// NewSummarizer builds the backend selected in cfg.
func NewSummarizer(ctx context.Context, cfg config.SummarizerConfig, httpClient *http.Client) (Summarizer, error) {
	switch cfg.Backend {
	case config.SummarizerHuggingFace:
		return NewHuggingFaceSummarizer(httpClient, cfg.URL, cfg.Model, cfg.APIKey), nil
	case config.SummarizerGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiSummarizer(client, cfg.Model), nil
	case config.SummarizerOllama:
		return NewOllamaSummarizer(cfg.URL, cfg.Model, httpClient)
	default:
		return nil, fmt.Errorf("unsupported summarizer backend: %q", cfg.Backend)
	}
}
