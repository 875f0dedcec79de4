package store

import (
	"context"
	"errors"

	"github/itish2003/studynotes/models"
)

// ErrCollectionNotFound is returned when a collection was never registered
// with the store.
var ErrCollectionNotFound = errors.New("collection not found")

// DocumentStore is the document database as the services see it. Only
// collections registered at construction time are reachable.
type DocumentStore interface {
	// Find returns every document of the collection in store order.
	Find(ctx context.Context, collection string) ([]models.Document, error)
	// InsertOne stores doc and returns its generated identifier.
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

func registry(collections []string) map[string]struct{} {
	known := make(map[string]struct{}, len(collections))
	for _, name := range collections {
		known[name] = struct{}{}
	}
	return known
}
