package store

import (
	"context"
	"fmt"
	"log"

	"github/itish2003/studynotes/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore serves the registered collections of one MongoDB database.
type MongoStore struct {
	client      *mongo.Client
	db          *mongo.Database
	collections map[string]struct{}
}

// Connect opens a client for uri and verifies it with a ping.
func Connect(ctx context.Context, uri, database string, collections []string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	log.Printf("STORE: Connected to MongoDB database '%s' (%d collections registered)", database, len(collections))
	return &MongoStore{
		client:      client,
		db:          client.Database(database),
		collections: registry(collections),
	}, nil
}

func (s *MongoStore) collection(name string) (*mongo.Collection, error) {
	if _, ok := s.collections[name]; !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrCollectionNotFound)
	}
	return s.db.Collection(name), nil
}

// Find implements DocumentStore.
func (s *MongoStore) Find(ctx context.Context, name string) ([]models.Document, error) {
	coll, err := s.collection(name)
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", name, err)
	}
	var raw []bson.D
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode documents from %s: %w", name, err)
	}
	docs := make([]models.Document, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, models.Document(d))
	}
	return docs, nil
}

// InsertOne implements DocumentStore.
func (s *MongoStore) InsertOne(ctx context.Context, name string, doc interface{}) (string, error) {
	coll, err := s.collection(name)
	if err != nil {
		return "", err
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", name, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
