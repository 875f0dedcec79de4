package models

// ErrorResponse is the legacy error body used by the flashcard, test and
// enriched-note endpoints.
type ErrorResponse struct {
	Error     string `json:"error"`
	Traceback string `json:"traceback,omitempty"`
}

// TopicErrorResponse is the error body of the topic notes endpoint.
type TopicErrorResponse struct {
	Success     bool     `json:"success"`
	Error       string   `json:"error"`
	ValidTopics []string `json:"valid_topics,omitempty"`
	TopicID     string   `json:"topic_id,omitempty"`
	Traceback   string   `json:"traceback,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Store   string `json:"store"`
}
