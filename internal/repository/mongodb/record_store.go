package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agriverse/warehouse/internal/repository/records"
)

// RecordStore is a MongoDB-backed records.Store. Each named document lives in
// a single collection keyed by document name, so the layout stays one JSON
// blob per key like the in-memory backend.
type RecordStore struct {
	client   *mongo.Client
	dbName   string
	collName string
}

type recordDoc struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// NewRecordStore connects to MongoDB and verifies the connection.
func NewRecordStore(ctx context.Context, uri, dbName string) (*RecordStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &RecordStore{
		client:   client,
		dbName:   dbName,
		collName: "records",
	}, nil
}

func (s *RecordStore) collection() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(s.collName)
}

// Read returns the raw document stored under key.
func (s *RecordStore) Read(ctx context.Context, key string) ([]byte, error) {
	var doc recordDoc
	err := s.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, records.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return doc.Value, nil
}

// Write upserts the raw document under key.
func (s *RecordStore) Write(ctx context.Context, key string, value []byte) error {
	_, err := s.collection().ReplaceOne(ctx,
		bson.M{"_id": key},
		recordDoc{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Absent keys are a no-op.
func (s *RecordStore) Delete(ctx context.Context, key string) error {
	if _, err := s.collection().DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}

// Close disconnects the underlying MongoDB client.
func (s *RecordStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
