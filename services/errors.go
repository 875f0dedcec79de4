package services

import "errors"

var (
	// ErrInvalidSubject is returned for subject keys outside the fixed sets.
	ErrInvalidSubject = errors.New("invalid subject name")
	// ErrInvalidTopic is returned for topic ids missing from the topic mapping.
	ErrInvalidTopic = errors.New("invalid topic_id")
	// ErrCollectionUnavailable means a mapped collection could not be obtained
	// from the store. It is a server fault, unlike ErrInvalidTopic.
	ErrCollectionUnavailable = errors.New("collection unavailable")
	// ErrSummarizationFailed marks enrichment failures, as opposed to store
	// reads that failed before any summarizer call.
	ErrSummarizationFailed = errors.New("summarization failed")
)

// CollectionUnavailableError carries the collection that could not be
// resolved. It matches ErrCollectionUnavailable under errors.Is.
type CollectionUnavailableError struct {
	Collection string
	Err        error
}

func (e *CollectionUnavailableError) Error() string {
	return "Collection " + e.Collection + " not found"
}

func (e *CollectionUnavailableError) Is(target error) bool {
	return target == ErrCollectionUnavailable
}

func (e *CollectionUnavailableError) Unwrap() error {
	return e.Err
}
