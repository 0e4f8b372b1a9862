package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/service/conversation"
	"github.com/sandevgo/footix/pkg/log"
)

const (
	// lockTTL frees the lock of a process that died mid-turn.
	lockTTL     = 5 * time.Second
	lockWait    = 2 * time.Second
	lockRetry   = 20 * time.Millisecond
	unlockLimit = time.Second
)

// unlockScript deletes the lock only while it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ConversationStore keeps conversation state in Redis so several footix
// processes can serve the same channels. Idle conversations expire after TTL.
type ConversationStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ conversation.Locker = (*ConversationStore)(nil)

func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	log.FromCtx(ctx).Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("connected to redis")
	return client, nil
}

func NewConversationStore(client *redis.Client, prefix string, ttl time.Duration) *ConversationStore {
	return &ConversationStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *ConversationStore) key(id string) string {
	return s.prefix + "conversation:" + id
}

func (s *ConversationStore) lockKey(id string) string {
	return s.prefix + "lock:" + id
}

// Lock takes a SETNX lock on conversation id, waiting up to lockWait for
// another process to release it.
func (s *ConversationStore) Lock(ctx context.Context, id string) (func(), error) {
	key := s.lockKey(id)
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, lockWait)
	defer cancel()

	for {
		ok, err := s.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("conversation %s is busy: %w", id, ctx.Err())
		case <-time.After(lockRetry):
		}
	}

	return func() {
		// the turn's context may already be done
		unlockCtx, cancel := context.WithTimeout(context.Background(), unlockLimit)
		defer cancel()
		_ = unlockScript.Run(unlockCtx, s.client, []string{key}, token).Err()
	}, nil
}

func (s *ConversationStore) Load(ctx context.Context, id string) (conversation.State, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return conversation.State{}, nil
	}
	if err != nil {
		return conversation.State{}, fmt.Errorf("failed to get conversation: %w", err)
	}

	var st conversation.State
	if err := json.Unmarshal(data, &st); err != nil {
		return conversation.State{}, fmt.Errorf("failed to decode conversation: %w", err)
	}
	return st, nil
}

func (s *ConversationStore) Save(ctx context.Context, id string, st conversation.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode conversation: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set conversation: %w", err)
	}
	return nil
}

func (s *ConversationStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}
