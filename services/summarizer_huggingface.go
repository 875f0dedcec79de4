package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github/itish2003/studynotes/models"
)

const (
	defaultHFModel   = "facebook/bart-large-cnn"
	defaultHFBaseURL = "https://router.huggingface.co/hf-inference/models/"
)

// huggingFaceSummarizer calls a hosted summarization pipeline. Its length
// bounds are model tokens, matching SummaryOptions exactly.
type huggingFaceSummarizer struct {
	httpClient *http.Client
	endpoint   string
	model      string
	token      string
}

// NewHuggingFaceSummarizer creates a summarizer for model. An empty endpoint
// selects the hosted inference router for that model. The summary text is
// returned untrimmed.
func NewHuggingFaceSummarizer(client *http.Client, endpoint, model, token string) Summarizer {
	if model == "" {
		model = defaultHFModel
	}
	if endpoint == "" {
		endpoint = defaultHFBaseURL + model
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &huggingFaceSummarizer{
		httpClient: client,
		endpoint:   endpoint,
		model:      model,
		token:      token,
	}
}

func (s *huggingFaceSummarizer) Name() string {
	return fmt.Sprintf("HuggingFace (%s)", s.model)
}

func (s *huggingFaceSummarizer) Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error) {
	reqBody, err := json.Marshal(models.HFSummarizationRequest{
		Inputs: text,
		Parameters: models.HFSummarizationParameters{
			MinLength: opts.MinTokens,
			MaxLength: opts.MaxTokens,
			DoSample:  !opts.Deterministic,
		},
		Options: models.HFInferenceOptions{WaitForModel: true},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal summarization request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create summarization http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call summarization api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read summarization response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr models.HFErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("summarization api returned status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("summarization api returned status %d, body: %s", resp.StatusCode, string(body))
	}

	var results []models.HFSummarizationResponse
	if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("failed to decode summarization response: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("summarization api returned no results")
	}
	return results[0].SummaryText, nil
}
