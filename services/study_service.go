package services

import (
	"context"
	"fmt"
	"log"

	"github/itish2003/studynotes/models"
	"github/itish2003/studynotes/store"
)

// StudyService serves flashcards and subject test questions. Both are plain
// reads and writes with no transformation beyond stringified ids.
type StudyService interface {
	ListFlashcards(c context.Context) ([]models.Document, error)
	AddFlashcard(c context.Context, req models.AddFlashcardRequest) (*models.Flashcard, error)
	ListTestQuestions(c context.Context, subject string) ([]models.Document, error)
}

type studyServiceImpl struct {
	store store.DocumentStore
}

func NewStudyService(st store.DocumentStore) StudyService {
	return &studyServiceImpl{store: st}
}

// ListFlashcards implements StudyService.
func (s *studyServiceImpl) ListFlashcards(c context.Context) ([]models.Document, error) {
	return s.findAll(c, ExamCollection)
}

// AddFlashcard implements StudyService.
func (s *studyServiceImpl) AddFlashcard(c context.Context, req models.AddFlashcardRequest) (*models.Flashcard, error) {
	card := &models.Flashcard{Question: req.Question, Answer: req.Answer}
	id, err := s.store.InsertOne(c, ExamCollection, card)
	if err != nil {
		return nil, fmt.Errorf("failed to add flashcard: %w", err)
	}
	card.ID = id
	log.Printf("SERVICE: Added flashcard %s", id)
	return card, nil
}

// ListTestQuestions implements StudyService.
func (s *studyServiceImpl) ListTestQuestions(c context.Context, subject string) ([]models.Document, error) {
	if !contains(testSubjects, subject) {
		return nil, ErrInvalidSubject
	}
	return s.findAll(c, subject)
}

func (s *studyServiceImpl) findAll(c context.Context, collection string) ([]models.Document, error) {
	docs, err := s.store.Find(c, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	out := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.StringifyID(doc))
	}
	log.Printf("SERVICE: Retrieved %d documents from '%s'", len(out), collection)
	return out, nil
}
