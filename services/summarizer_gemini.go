package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiSummarizer struct {
	client *genai.Client
	model  string
}

func NewGeminiSummarizer(client *genai.Client, model string) Summarizer {
	if model == "" {
		model = defaultGeminiModel
	}
	return &geminiSummarizer{client: client, model: model}
}

func (s *geminiSummarizer) Name() string {
	return fmt.Sprintf("Gemini (%s)", s.model)
}

func (s *geminiSummarizer) Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: GetSummaryInstruction(),
		MaxOutputTokens:   int32(opts.MaxTokens),
		// Thinking tokens count against MaxOutputTokens.
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	}
	if opts.Deterministic {
		cfg.Temperature = genai.Ptr[float32](0)
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(buildSummaryPrompt(text, opts)), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini api call failed: %w", err)
	}
	summary := strings.TrimSpace(result.Text())
	if summary == "" {
		return "", fmt.Errorf("gemini returned an empty summary")
	}
	return summary, nil
}
