package conversation

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// Store persists conversation state by conversation id. Load returns the
// zero State for unknown ids.
type Store interface {
	Load(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, id string, st State) error
	Delete(ctx context.Context, id string) error
}

// Locker is implemented by stores shared between processes. Lock blocks
// until the caller holds conversation id or ctx ends.
type Locker interface {
	Lock(ctx context.Context, id string) (unlock func(), err error)
}

// MemoryStore keeps the most recently active conversations in process
// memory. The least recently used one is forgotten once size is exceeded.
type MemoryStore struct {
	cache *lru.Cache
}

func NewMemoryStore(size int) (*MemoryStore, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation cache: %w", err)
	}
	return &MemoryStore{cache: cache}, nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (State, error) {
	v, ok := m.cache.Get(id)
	if !ok {
		return State{}, nil
	}
	return v.(State), nil
}

func (m *MemoryStore) Save(_ context.Context, id string, st State) error {
	m.cache.Add(id, st)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}

func (m *MemoryStore) Len() int {
	return m.cache.Len()
}
