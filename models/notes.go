package models

// SummaryResult is the derived view of a block of note text.
type SummaryResult struct {
	Summary   string   `json:"summary"`
	Pointwise []string `json:"pointwise"`
}

// EnrichedNotesResponse is returned by GET /note/{content}/.
type EnrichedNotesResponse struct {
	Success    bool       `json:"success"`
	Subject    string     `json:"subject"`
	Notes      []Document `json:"notes"`
	Summary    string     `json:"summary"`
	Pointwise  []string   `json:"pointwise"`
	TotalNotes int        `json:"total_notes"`
}

// TopicNotesResponse is returned by GET /notes/{topicId}/. Each entry of
// Notes is either {"content": ...} or a stored object passed through as is.
type TopicNotesResponse struct {
	Success    bool       `json:"success"`
	TopicID    string     `json:"topic_id"`
	Collection string     `json:"collection"`
	Notes      []Document `json:"notes"`
	Count      int        `json:"count"`
}
