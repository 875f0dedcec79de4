package services

import (
	"context"
	"strings"
	"sync"
	"time"
)

type fakeSummarizer struct {
	mu        sync.Mutex
	calls     []string
	opts      []SummaryOptions
	deadlines []bool
	err       error
}

func (f *fakeSummarizer) Name() string { return "fake" }

func (f *fakeSummarizer) Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, hasDeadline := ctx.Deadline()
	f.calls = append(f.calls, text)
	f.opts = append(f.opts, opts)
	f.deadlines = append(f.deadlines, hasDeadline)
	if f.err != nil {
		return "", f.err
	}
	return "Summary " + string(rune('A'+len(f.calls)-1)) + ".", nil
}

func (f *fakeSummarizer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// periodSplitter ends a sentence after every period.
type periodSplitter struct{}

func (periodSplitter) Split(text string) []string {
	var out []string
	for _, part := range strings.SplitAfter(text, ".") {
		if strings.TrimSpace(part) != "" {
			out = append(out, part)
		}
	}
	return out
}

func newTestEnricher(s Summarizer) *Enricher {
	return NewEnricher(s, periodSplitter{}, time.Minute)
}
