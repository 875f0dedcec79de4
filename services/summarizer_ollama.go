package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const defaultOllamaModel = "llama3.2"

// ollamaSummarizer runs summaries on a local Ollama server through
// langchaingo.
type ollamaSummarizer struct {
	llm   llms.Model
	model string
}

// NewOllamaSummarizer connects to serverURL, or to the langchaingo default
// (OLLAMA_HOST or localhost:11434) when it is empty.
func NewOllamaSummarizer(serverURL, model string, httpClient *http.Client) (Summarizer, error) {
	if model == "" {
		model = defaultOllamaModel
	}
	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(strings.TrimRight(serverURL, "/")))
	}
	if httpClient != nil {
		opts = append(opts, ollama.WithHTTPClient(httpClient))
	}
	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return &ollamaSummarizer{llm: llm, model: model}, nil
}

func (s *ollamaSummarizer) Name() string {
	return fmt.Sprintf("Ollama (%s)", s.model)
}

func (s *ollamaSummarizer) Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error) {
	callOpts := []llms.CallOption{
		llms.WithMaxTokens(opts.MaxTokens),
		llms.WithMinLength(opts.MinTokens),
	}
	if opts.Deterministic {
		callOpts = append(callOpts, llms.WithTemperature(0), llms.WithSeed(0))
	}
	prompt := summaryInstruction + "\n\n" + buildSummaryPrompt(text, opts)
	out, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt, callOpts...)
	if err != nil {
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}
	summary := strings.TrimSpace(out)
	if summary == "" {
		return "", fmt.Errorf("ollama returned an empty summary")
	}
	return summary, nil
}
