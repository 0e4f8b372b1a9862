package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sandevgo/footix/internal/service/conversation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationStore_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := NewConversationStore(client, "test:", time.Minute)
	ctx := context.Background()

	_, err := store.Load(ctx, "c")
	assert.ErrorContains(t, err, "failed to get conversation")

	err = store.Save(ctx, "c", conversation.State{Turns: 1})
	assert.ErrorContains(t, err, "failed to set conversation")

	_, err = store.Lock(ctx, "c")
	assert.ErrorContains(t, err, "failed to acquire lock")

	// the registry still answers on top of a dead store
	reg := conversation.NewRegistry(store)
	ran := false
	err = reg.Do(ctx, "c", func(st *conversation.State) { ran = true })
	assert.Error(t, err)
	assert.True(t, ran)
}

// Set FOOTIX_TEST_REDIS_ADDR to run against a live server.
func TestConversationStore_Live(t *testing.T) {
	addr := os.Getenv("FOOTIX_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("FOOTIX_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	store := NewConversationStore(client, "footix-test:"+uuid.NewString()+":", time.Minute)
	ctx := context.Background()

	st, err := store.Load(ctx, "c")
	require.NoError(t, err)
	assert.Zero(t, st.Turns)

	now := time.Now().UTC().Truncate(time.Second)
	st.Record("how are you", "I'M GREAT", now)
	require.NoError(t, store.Save(ctx, "c", st))

	got, err := store.Load(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "how are you", got.PreviousInput)
	assert.Equal(t, "I'M GREAT", got.PreviousOutput)
	assert.Equal(t, 1, got.Turns)
	assert.True(t, now.Equal(got.UpdatedAt))

	ttl, err := client.TTL(ctx, store.key("c")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, "c"))
	got, err = store.Load(ctx, "c")
	require.NoError(t, err)
	assert.Zero(t, got.Turns)
}

func TestConversationStore_LiveLock(t *testing.T) {
	addr := os.Getenv("FOOTIX_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("FOOTIX_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	// two stores on one prefix stand in for two processes
	prefix := "footix-test:" + uuid.NewString() + ":"
	first := NewConversationStore(client, prefix, time.Minute)
	second := NewConversationStore(client, prefix, time.Minute)
	ctx := context.Background()

	unlock, err := first.Lock(ctx, "c")
	require.NoError(t, err)

	busyCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = second.Lock(busyCtx, "c")
	assert.ErrorContains(t, err, "is busy")

	// other conversations are not blocked
	unlockOther, err := second.Lock(ctx, "d")
	require.NoError(t, err)
	unlockOther()

	unlock()
	unlock, err = second.Lock(ctx, "c")
	require.NoError(t, err)
	unlock()
}
