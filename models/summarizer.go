package models

// HFSummarizationRequest is sent to a hosted summarization model on the
// Hugging Face inference API.
type HFSummarizationRequest struct {
	Inputs     string                    `json:"inputs"`
	Parameters HFSummarizationParameters `json:"parameters"`
	Options    HFInferenceOptions        `json:"options"`
}

type HFSummarizationParameters struct {
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

type HFInferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// HFSummarizationResponse is one element of the array the API returns.
type HFSummarizationResponse struct {
	SummaryText string `json:"summary_text"`
}

// HFErrorResponse is returned with non-200 statuses.
type HFErrorResponse struct {
	Error string `json:"error"`
}
