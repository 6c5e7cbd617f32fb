package databases

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// memoryStore keeps documents in process memory. Scan returns documents in
// the order they were first put. Documents are copied through bson on the
// way in and out so callers never share state with the store.
type memoryStore[T any] struct {
	mu    sync.RWMutex
	id    func(*T) string
	docs  map[string][]byte
	order []string
}

func newMemoryStore[T any](id func(*T) string) *memoryStore[T] {
	return &memoryStore[T]{
		id:   id,
		docs: make(map[string][]byte),
	}
}

func (m *memoryStore[T]) Get(_ context.Context, id string) (*T, error) {
	m.mu.RLock()
	raw, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	doc := new(T)
	if err := bson.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return doc, nil
}

func (m *memoryStore[T]) Put(_ context.Context, doc *T) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	id := m.id(doc)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		m.order = append(m.order, id)
	}
	m.docs[id] = raw
	return nil
}

func (m *memoryStore[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	for i, key := range m.order {
		if key == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memoryStore[T]) Scan(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs := make([]T, 0, len(m.order))
	for _, id := range m.order {
		var doc T
		if err := bson.Unmarshal(m.docs[id], &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", id, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
