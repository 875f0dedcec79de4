package services

import (
	"fmt"

	"google.golang.org/genai"
)

const summaryInstruction = `You summarize study notes for a student revising for an exam.

Rules:
1. Write plain prose in complete sentences. No headings, bullet points or markdown.
2. Keep only facts stated in the text. Do not add explanations or examples of your own.
3. Prefer definitions, key properties and results over introductions and filler.
4. Reply with the summary only.`

// GetSummaryInstruction returns the system instruction for LLM-backed
// summarizers.
func GetSummaryInstruction() *genai.Content {
	contents := genai.Text(summaryInstruction)
	if len(contents) == 0 {
		return nil
	}
	return contents[0]
}

// buildSummaryPrompt frames one chunk with its length bounds. Token bounds
// are approximated as words for instruction-following models.
func buildSummaryPrompt(text string, opts SummaryOptions) string {
	return fmt.Sprintf("Summarize the following text in roughly %d to %d words.\n\nText:\n%s", opts.MinTokens, opts.MaxTokens, text)
}
