package db

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store used by tests and for running the
// server without a MongoDB instance. Documents pass through a bson
// round-trip so field names and value types match what the Mongo
// implementation would return.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{collections: map[string][]bson.M{}}
}

func (m *Memory) InsertOne(_ context.Context, collection string, doc any) (string, error) {
	normalized, err := normalize(doc)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	normalized["_id"] = id

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], normalized)
	m.mu.Unlock()

	return id.Hex(), nil
}

func (m *Memory) FindMany(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := []bson.M{}
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			docs = append(docs, clone(doc))
		}
	}
	return docs, nil
}

func (m *Memory) FindLatest(_ context.Context, collection string) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := m.collections[collection]
	if len(docs) == 0 {
		return nil, nil
	}
	return clone(docs[len(docs)-1]), nil
}

func (m *Memory) ReplaceSingleton(_ context.Context, collection string, doc any) error {
	normalized, err := normalize(doc)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Keep the existing identifier on replace, like an upsert would.
	if existing := m.collections[collection]; len(existing) > 0 {
		normalized["_id"] = existing[0]["_id"]
	} else {
		normalized["_id"] = primitive.NewObjectID()
	}
	m.collections[collection] = []bson.M{normalized}
	return nil
}

func (m *Memory) IsEmpty(_ context.Context, collection string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection]) == 0, nil
}

func (m *Memory) Collections(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}

func (m *Memory) Name() string {
	return "memory"
}

func normalize(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

func matches(doc, filter bson.M) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok || got != want {
			return false
		}
	}
	return true
}

func clone(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
