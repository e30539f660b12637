package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections in process memory. Used for tests and
// local development without a database.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

// Collection returns the named collection, creating it on first use.
func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[name]
	if !ok {
		coll = &memoryCollection{index: make(map[string]int)}
		s.collections[name] = coll
	}
	return coll
}

// Ping implements Store.
func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }

type memoryCollection struct {
	mu    sync.RWMutex
	docs  []memoryDocument
	index map[string]int
}

type memoryDocument struct {
	id  string
	raw []byte
}

func (c *memoryCollection) Insert(ctx context.Context, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	id, err := documentID(raw)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.index[id] = len(c.docs)
	c.docs = append(c.docs, memoryDocument{id: id, raw: raw})
	return nil
}

func (c *memoryCollection) FindByID(ctx context.Context, id string, out any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		return ErrNoDocument
	}
	return json.Unmarshal(c.docs[pos].raw, out)
}

func (c *memoryCollection) List(ctx context.Context, limit int, out any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := len(c.docs)
	if limit > 0 && count > limit {
		count = limit
	}
	raws := make([]json.RawMessage, 0, count)
	for _, doc := range c.docs[:count] {
		raws = append(raws, doc.raw)
	}
	return decodeList(raws, out)
}

func (c *memoryCollection) Count(ctx context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.docs)), nil
}

func (c *memoryCollection) UpdateByID(ctx context.Context, id string, fields map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return ErrNoDocument
	}
	merged, err := mergeDocument(c.docs[pos].raw, fields)
	if err != nil {
		return err
	}
	c.docs[pos].raw = merged
	return nil
}
