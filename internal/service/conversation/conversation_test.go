package conversation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Repeats(t *testing.T) {
	var st State
	assert.False(t, st.RepeatsInput(""))
	assert.False(t, st.EchoesOutput(""))

	st.Record("how are you", "I'M GREAT", time.Now())
	assert.True(t, st.RepeatsInput("how are you"))
	assert.False(t, st.RepeatsInput("how are you doing"))
	assert.True(t, st.EchoesOutput("I'M GREAT"))
	assert.False(t, st.EchoesOutput("i'm great"))
	assert.Equal(t, 1, st.Turns)
}

func TestMemoryStore_Evicts(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemoryStore(2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, fmt.Sprintf("c%d", i), State{Turns: i + 1}))
	}
	assert.Equal(t, 2, store.Len())

	st, err := store.Load(ctx, "c0")
	require.NoError(t, err)
	assert.Equal(t, State{}, st, "oldest conversation should be evicted")

	st, err = store.Load(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, 3, st.Turns)

	require.NoError(t, store.Delete(ctx, "c2"))
	st, _ = store.Load(ctx, "c2")
	assert.Equal(t, 0, st.Turns)
}

func TestMemoryStore_InvalidSize(t *testing.T) {
	_, err := NewMemoryStore(0)
	assert.Error(t, err)
}

func TestRegistry_SerializesTurns(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemoryStore(16)
	require.NoError(t, err)
	reg := NewRegistry(store)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = reg.Do(ctx, "a", func(st *State) { st.Record("x", "y", time.Now()) })
		}()
		go func() {
			defer wg.Done()
			_ = reg.Do(ctx, "b", func(st *State) { st.Record("x", "y", time.Now()) })
		}()
	}
	wg.Wait()

	a, err := reg.Get(ctx, "a")
	require.NoError(t, err)
	b, err := reg.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 50, a.Turns)
	assert.Equal(t, 50, b.Turns)

	require.NoError(t, reg.Reset(ctx, "a"))
	a, _ = reg.Get(ctx, "a")
	assert.Equal(t, 0, a.Turns)
}

type failingStore struct {
	loadErr error
	saveErr error
	saved   State
}

func (f *failingStore) Load(context.Context, string) (State, error) {
	return State{Turns: 7}, f.loadErr
}

func (f *failingStore) Save(_ context.Context, _ string, st State) error {
	f.saved = st
	return f.saveErr
}

func (f *failingStore) Delete(context.Context, string) error { return nil }

func TestRegistry_RunsOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	loadErr := errors.New("connection refused")
	saveErr := errors.New("read only")
	store := &failingStore{loadErr: loadErr, saveErr: saveErr}
	reg := NewRegistry(store)

	called := false
	err := reg.Do(ctx, "a", func(st *State) {
		called = true
		assert.Equal(t, 0, st.Turns, "a failed load starts from a fresh state")
		st.Record("in", "out", time.Now())
	})

	assert.True(t, called)
	assert.ErrorIs(t, err, loadErr)
	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, 1, store.saved.Turns)
}

type lockingStore struct {
	*MemoryStore
	lockErr error
	events  []string
}

func (l *lockingStore) Lock(_ context.Context, id string) (func(), error) {
	if l.lockErr != nil {
		return nil, l.lockErr
	}
	l.events = append(l.events, "lock "+id)
	return func() { l.events = append(l.events, "unlock "+id) }, nil
}

func (l *lockingStore) Save(ctx context.Context, id string, st State) error {
	l.events = append(l.events, "save "+id)
	return l.MemoryStore.Save(ctx, id, st)
}

func TestRegistry_LocksSharedStore(t *testing.T) {
	ctx := context.Background()
	mem, err := NewMemoryStore(4)
	require.NoError(t, err)
	store := &lockingStore{MemoryStore: mem}
	reg := NewRegistry(store)

	require.NoError(t, reg.Do(ctx, "a", func(st *State) { st.Record("in", "out", time.Now()) }))
	assert.Equal(t, []string{"lock a", "save a", "unlock a"}, store.events)
}

func TestRegistry_RunsWhenLockFails(t *testing.T) {
	ctx := context.Background()
	mem, err := NewMemoryStore(4)
	require.NoError(t, err)
	lockErr := errors.New("lock timeout")
	reg := NewRegistry(&lockingStore{MemoryStore: mem, lockErr: lockErr})

	ran := false
	err = reg.Do(ctx, "a", func(st *State) {
		ran = true
		st.Record("in", "out", time.Now())
	})
	assert.True(t, ran)
	assert.ErrorIs(t, err, lockErr)

	st, err := reg.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Turns)
}
