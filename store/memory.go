package store

import (
	"context"
	"fmt"
	"sync"

	"github/itish2003/studynotes/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps documents in process memory. It backs local runs
// without a database and the handler tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]struct{}
	docs        map[string][]models.Document
	finds       int
}

func NewMemoryStore(collections []string) *MemoryStore {
	return &MemoryStore{
		collections: registry(collections),
		docs:        make(map[string][]models.Document),
	}
}

// Seed appends documents to a registered collection as they are given.
func (s *MemoryStore) Seed(name string, docs ...models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[name]; !ok {
		return fmt.Errorf("%s: %w", name, ErrCollectionNotFound)
	}
	s.docs[name] = append(s.docs[name], docs...)
	return nil
}

// Finds reports how many Find calls reached a registered collection.
func (s *MemoryStore) Finds() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finds
}

// Find implements DocumentStore.
func (s *MemoryStore) Find(_ context.Context, name string) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[name]; !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrCollectionNotFound)
	}
	s.finds++
	stored := s.docs[name]
	out := make([]models.Document, len(stored))
	for i, d := range stored {
		out[i] = append(models.Document(nil), d...)
	}
	return out, nil
}

// InsertOne implements DocumentStore. doc goes through a BSON round trip so
// it is stored exactly as the Mongo backend would decode it.
func (s *MemoryStore) InsertOne(_ context.Context, name string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	var decoded bson.D
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode document: %w", err)
	}

	stored := models.Document(decoded)
	id, ok := stored.Lookup("_id")
	if !ok {
		oid := primitive.NewObjectID()
		id = oid
		stored = append(models.Document{{Key: "_id", Value: oid}}, stored...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[name]; !ok {
		return "", fmt.Errorf("%s: %w", name, ErrCollectionNotFound)
	}
	s.docs[name] = append(s.docs[name], stored)

	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(id), nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close(context.Context) error { return nil }
