package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github/itish2003/studynotes/metrics"
	"github/itish2003/studynotes/models"
)

const (
	// Texts longer than chunkThreshold are cut into chunkSize windows.
	chunkThreshold = 1500
	chunkSize      = 1000

	summaryMinTokens = 30
	summaryMaxTokens = 100

	NoNotesPlaceholder = "No notes found for summarization."
	NoTextPlaceholder  = "No text content found in notes."
)

var disallowedChars = regexp.MustCompile(`[^A-Za-z0-9.,!?;:\s]`)

// preprocessText collapses whitespace, trims, then deletes every character
// outside ASCII letters, digits, whitespace and .,!?;: . Deleting characters
// may leave double spaces; they are kept.
func preprocessText(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	return disallowedChars.ReplaceAllString(collapsed, "")
}

// chunkText splits text into consecutive fixed-size windows when it is
// longer than chunkThreshold. Boundaries may fall inside words. The input is
// ASCII after preprocessing, so byte offsets are character offsets.
func chunkText(text string) []string {
	if len(text) <= chunkThreshold {
		return []string{text}
	}
	chunks := make([]string, 0, (len(text)+chunkSize-1)/chunkSize)
	for i := 0; i < len(text); i += chunkSize {
		end := i + chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks
}

// Pointwise numbers each sentence of text from 1. Blank text yields an
// empty list.
func Pointwise(splitter SentenceSplitter, text string) []string {
	points := []string{}
	if strings.TrimSpace(text) == "" {
		return points
	}
	for i, sentence := range splitter.Split(text) {
		points = append(points, fmt.Sprintf("%d. %s", i+1, strings.TrimSpace(sentence)))
	}
	return points
}

// Enricher turns note text into a summary and its pointwise breakdown.
type Enricher struct {
	summarizer Summarizer
	splitter   SentenceSplitter
	timeout    time.Duration
}

// NewEnricher creates an Enricher. A zero timeout leaves summarizer calls
// bounded only by the caller's context.
func NewEnricher(summarizer Summarizer, splitter SentenceSplitter, timeout time.Duration) *Enricher {
	return &Enricher{
		summarizer: summarizer,
		splitter:   splitter,
		timeout:    timeout,
	}
}

// Summarize cleans text, summarizes it chunk by chunk and joins the partial
// summaries with single spaces.
func (e *Enricher) Summarize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return NoNotesPlaceholder, nil
	}
	clean := preprocessText(text)
	if clean == "" {
		return NoTextPlaceholder, nil
	}

	chunks := chunkText(clean)
	metrics.ObserveChunks(len(chunks))
	log.Printf("SUMMARIZER: Summarizing %d characters in %d chunk(s) with %s", len(clean), len(chunks), e.summarizer.Name())

	opts := SummaryOptions{
		MinTokens:     summaryMinTokens,
		MaxTokens:     summaryMaxTokens,
		Deterministic: true,
	}
	var sb strings.Builder
	for i, chunk := range chunks {
		summary, err := e.summarizeChunk(ctx, chunk, opts)
		if err != nil {
			return "", fmt.Errorf("could not summarize chunk %d of %d: %w", i+1, len(chunks), err)
		}
		sb.WriteString(summary)
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String()), nil
}

func (e *Enricher) summarizeChunk(ctx context.Context, chunk string, opts SummaryOptions) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	start := time.Now()
	summary, err := e.summarizer.Summarize(ctx, chunk, opts)
	metrics.ObserveSummarizerCall(e.summarizer.Name(), time.Since(start), err)
	return summary, err
}

// Enrich summarizes text and breaks the summary into numbered sentences.
// Text with nothing left after cleaning never reaches the summarizer.
func (e *Enricher) Enrich(ctx context.Context, text string) (models.SummaryResult, error) {
	if preprocessText(text) == "" {
		return models.SummaryResult{Summary: NoTextPlaceholder, Pointwise: []string{}}, nil
	}
	summary, err := e.Summarize(ctx, text)
	if err != nil {
		return models.SummaryResult{}, err
	}
	return models.SummaryResult{
		Summary:   summary,
		Pointwise: Pointwise(e.splitter, summary),
	}, nil
}
