package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github/itish2003/studynotes/models"
	"github/itish2003/studynotes/store"

	pkgerrors "github.com/pkg/errors"
)

// NotesService serves stored notes, either enriched with a summary or
// normalized by topic.
type NotesService interface {
	GetEnrichedNotes(c context.Context, subject string) (*models.EnrichedNotesResponse, error)
	GetNotesByTopic(c context.Context, topicID string) (*models.TopicNotesResponse, error)
}

type notesServiceImpl struct {
	store    store.DocumentStore
	enricher *Enricher
}

func NewNotesService(st store.DocumentStore, enricher *Enricher) NotesService {
	return &notesServiceImpl{
		store:    st,
		enricher: enricher,
	}
}

// GetEnrichedNotes implements NotesService for flat-shape note collections.
func (n *notesServiceImpl) GetEnrichedNotes(c context.Context, subject string) (*models.EnrichedNotesResponse, error) {
	if !contains(noteSubjects, subject) {
		return nil, ErrInvalidSubject
	}
	log.Printf("SERVICE: Getting enriched notes for '%s'", subject)

	docs, err := n.store.Find(c, subject)
	if err != nil {
		return nil, pkgerrors.WithStack(fmt.Errorf("failed to fetch notes for %s: %w", subject, err))
	}

	if len(docs) == 0 {
		log.Printf("SERVICE: No notes found in '%s'", subject)
		return &models.EnrichedNotesResponse{
			Success:    true,
			Subject:    subject,
			Notes:      []models.Document{},
			Summary:    NoNotesPlaceholder,
			Pointwise:  []string{},
			TotalNotes: 0,
		}, nil
	}

	notes := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, models.StringifyID(doc))
	}

	result := models.SummaryResult{Summary: NoTextPlaceholder, Pointwise: []string{}}
	if text := AggregateFlatText(docs); strings.TrimSpace(text) != "" {
		result, err = n.enricher.Enrich(c, text)
		if err != nil {
			return nil, pkgerrors.WithStack(fmt.Errorf("failed to enrich notes for %s: %w: %w", subject, ErrSummarizationFailed, err))
		}
	}

	log.Printf("SERVICE: Enriched %d notes from '%s' into %d points", len(notes), subject, len(result.Pointwise))
	return &models.EnrichedNotesResponse{
		Success:    true,
		Subject:    subject,
		Notes:      notes,
		Summary:    result.Summary,
		Pointwise:  result.Pointwise,
		TotalNotes: len(notes),
	}, nil
}

// GetNotesByTopic implements NotesService for nested-indexed note collections.
func (n *notesServiceImpl) GetNotesByTopic(c context.Context, topicID string) (*models.TopicNotesResponse, error) {
	collection, ok := topicMapping[topicID]
	if !ok {
		return nil, ErrInvalidTopic
	}
	log.Printf("SERVICE: Getting notes for topic %s from '%s'", topicID, collection)

	docs, err := n.store.Find(c, collection)
	if err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			return nil, &CollectionUnavailableError{Collection: collection, Err: err}
		}
		return nil, pkgerrors.WithStack(fmt.Errorf("failed to fetch notes for topic %s: %w", topicID, err))
	}

	notes := NormalizeTopicNotes(docs)
	log.Printf("SERVICE: Normalized %d documents into %d notes", len(docs), len(notes))
	return &models.TopicNotesResponse{
		Success:    true,
		TopicID:    topicID,
		Collection: collection,
		Notes:      notes,
		Count:      len(notes),
	}, nil
}
