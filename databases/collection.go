package databases

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoStore is the mongo backed key-value collection shared by the user,
// case and hearing databases. Documents are keyed by _id.
type mongoStore[T any] struct {
	db   DatabaseHelper
	name string
	id   func(*T) string
}

func (m *mongoStore[T]) Get(ctx context.Context, id string) (*T, error) {
	doc := new(T)
	err := m.db.Collection(m.name).FindOne(ctx, bson.M{"_id": id}).Decode(doc)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s %s: %w", m.name, id, err)
	}
	return doc, nil
}

func (m *mongoStore[T]) Put(ctx context.Context, doc *T) error {
	id := m.id(doc)
	err := m.db.Collection(m.name).ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s %s: %w", m.name, id, err)
	}
	return nil
}

func (m *mongoStore[T]) Delete(ctx context.Context, id string) error {
	n, err := m.db.Collection(m.name).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", m.name, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoStore[T]) Scan(ctx context.Context) ([]T, error) {
	cursor, err := m.db.Collection(m.name).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", m.name, err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", m.name, err)
	}
	return docs, nil
}
