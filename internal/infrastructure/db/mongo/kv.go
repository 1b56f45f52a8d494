package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionSessionStorage = "session_storage"

// KVStore keeps the persisted session as one document per key.
type KVStore struct {
	col *mongo.Collection
}

func NewKVStore(db *mongo.Database) *KVStore {
	return &KVStore{col: db.Collection(collectionSessionStorage)}
}

type kvEntry struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e kvEntry
	err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("find %s: %w", key, err)
	}
	return e.Value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": key}, kvEntry{Key: key, Value: value}, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
