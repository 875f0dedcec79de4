package services

import (
	"fmt"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// SentenceSplitter splits text into sentences, in order.
type SentenceSplitter interface {
	Split(text string) []string
}

// PunktSplitter detects sentence boundaries with the pretrained English
// Punkt model, so abbreviations such as "e.g." do not end a sentence.
// A lone letter followed by a period, as in "A. B. C.", always ends a
// sentence, which also splits personal initials like "J. Bach".
type PunktSplitter struct {
	tokenizer sentences.SentenceTokenizer
}

func NewPunktSplitter() (*PunktSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load punkt model: %w", err)
	}
	tokenizer.Annotations = append(tokenizer.Annotations, &initialBreakAnnotation{parser: tokenizer.WordTokenizer})
	return &PunktSplitter{tokenizer: tokenizer}, nil
}

func (p *PunktSplitter) Split(text string) []string {
	tokens := p.tokenizer.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, s := range tokens {
		out = append(out, s.Text)
	}
	return out
}

// initialBreakAnnotation runs after the Punkt passes and marks single-letter
// tokens ending in a period as sentence breaks.
type initialBreakAnnotation struct {
	parser sentences.TokenParser
}

func (a *initialBreakAnnotation) Annotate(tokens []*sentences.Token) []*sentences.Token {
	for _, tok := range tokens {
		if a.parser.IsInitial(tok) {
			tok.SentBreak = true
			tok.Abbr = false
		}
	}
	return tokens
}
