package conversation

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// Registry maps conversation ids to their State and serializes turns of the
// same conversation. Different conversations proceed in parallel unless they
// share a lock stripe.
type Registry struct {
	store Store
	locks [lockStripes]sync.Mutex
}

func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

func (r *Registry) lock(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &r.locks[h.Sum32()%lockStripes]
}

// Do runs fn on the state of conversation id and saves the result, holding
// the conversation's lock throughout. Stores that implement Locker are also
// locked, so processes sharing the store take turns too.
//
// fn always runs: when the state cannot be locked or loaded it receives a
// fresh State and the error is returned along with any save error.
func (r *Registry) Do(ctx context.Context, id string, fn func(st *State)) error {
	mu := r.lock(id)
	mu.Lock()
	defer mu.Unlock()

	var lockErr error
	if locker, ok := r.store.(Locker); ok {
		unlock, err := locker.Lock(ctx, id)
		if err != nil {
			lockErr = fmt.Errorf("failed to lock conversation %s: %w", id, err)
		} else {
			defer unlock()
		}
	}

	st, loadErr := r.store.Load(ctx, id)
	if loadErr != nil {
		st = State{}
		loadErr = fmt.Errorf("failed to load conversation %s: %w", id, loadErr)
	}

	fn(&st)

	var saveErr error
	if err := r.store.Save(ctx, id, st); err != nil {
		saveErr = fmt.Errorf("failed to save conversation %s: %w", id, err)
	}
	return errors.Join(lockErr, loadErr, saveErr)
}

// Get returns a snapshot of the state of conversation id.
func (r *Registry) Get(ctx context.Context, id string) (State, error) {
	mu := r.lock(id)
	mu.Lock()
	defer mu.Unlock()
	return r.store.Load(ctx, id)
}

// Reset forgets conversation id.
func (r *Registry) Reset(ctx context.Context, id string) error {
	mu := r.lock(id)
	mu.Lock()
	defer mu.Unlock()
	return r.store.Delete(ctx, id)
}
