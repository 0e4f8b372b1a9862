//go:build integration

package integration

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/internal/service/bot"
	"github.com/sandevgo/footix/internal/service/command"
	"github.com/sandevgo/footix/internal/service/conversation"
	"github.com/sandevgo/footix/internal/service/knowledge"
	"github.com/sandevgo/footix/internal/service/resolver"
	"github.com/sandevgo/footix/internal/storage/redis"
	"github.com/sandevgo/footix/internal/storage/sqlite"
	"github.com/sandevgo/footix/pkg/retry"
	"github.com/sandevgo/footix/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canned = core.CannedResponses{
	Unknown:        "I'M NOT SURE IF I UNDERSTAND WHAT YOU ARE TALKING ABOUT.",
	EmptyInput:     "SORRY, I WAS FALLING ASLEEP! WAHT'S UP?",
	RepeatQuestion: "ARE YOU REALLY MAKING ME REPEAT MYSELF??",
	RepeatAnswer:   "ARE YOU MOCKING ME?",
}

type inbox struct {
	mu      sync.Mutex
	replies []string
}

func (i *inbox) Send(ctx context.Context, channelID, text string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.replies = append(i.replies, text)
	return nil
}

func (i *inbox) last() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.replies) == 0 {
		return ""
	}
	return i.replies[len(i.replies)-1]
}

type pipeline struct {
	hub   *bot.Hub
	turns *sqlite.TurnsRepo
}

func newPipeline(t *testing.T, store conversation.Store) *pipeline {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, filepath.Join(t.TempDir(), "footix.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// file -> database -> resolver, the path taken by 'kb import'
	entries, err := knowledge.NewFileSource(test.WriteKnowledgeFile(t)).LoadEntries(ctx)
	require.NoError(t, err)
	repo := sqlite.NewKnowledgeRepo(db)
	n, err := repo.Merge(ctx, entries)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	stored, err := repo.LoadEntries(ctx)
	require.NoError(t, err)

	r, err := resolver.New(resolver.Config{
		Blacklist: []string{"hey"},
		Knowledge: stored,
		Canned:    canned,
		Fuzziness: 0.5,
	})
	require.NoError(t, err)

	responder := resolver.NewResponder(r, conversation.NewRegistry(store))
	turns := sqlite.NewTurnsRepo(db)
	router := command.NewRouter(responder.Registry(), r.Base(), turns)

	listener := bot.NewListener(responder, router, turns, retry.NewRetrier(&retry.Config{
		MaxRetries:    1,
		InitialDelay:  time.Millisecond,
		MaxDelay:      time.Millisecond,
		BackoffFactor: 1,
	}))

	hub := bot.NewHub()
	t.Cleanup(hub.Subscribe(listener))
	return &pipeline{hub: hub, turns: turns}
}

func (p *pipeline) say(channel, text string, out *inbox) string {
	p.hub.OnMessage(context.Background(), core.Utterance{Text: text, ChannelID: channel, SenderID: "tester"}, out)
	return out.last()
}

func runConversation(t *testing.T, p *pipeline) {
	out := &inbox{}

	assert.Equal(t, "I'M GREAT THANK YOU!", p.say("c1", "hey how are you?", out))
	assert.Equal(t, canned.RepeatQuestion, p.say("c1", "hey how are you", out))
	assert.Equal(t, "TIME TO GET A WATCH", p.say("c1", "what time is it?", out))
	assert.Equal(t, canned.RepeatAnswer, p.say("c1", "TIME TO GET A WATCH", out))
	assert.Equal(t, canned.EmptyInput, p.say("c1", "hey!!", out))
	assert.Equal(t, "TIME TO GET A WATCH", p.say("c1", "what tme is it", out))

	// channels do not share state
	assert.Equal(t, "I'M GREAT THANK YOU!", p.say("c2", "how are you", out))

	assert.NotEmpty(t, p.say("c1", "/reset", out))
	assert.Equal(t, "TIME TO GET A WATCH", p.say("c1", "what tme is it", out))

	history := p.say("c1", "/history 2", out)
	assert.True(t, strings.Contains(history, "what tme is it"), history)

	turns, err := p.turns.RecentTurns(context.Background(), "c1", 50)
	require.NoError(t, err)
	require.Len(t, turns, 7, "commands are not part of the transcript")

	outcomes := make([]core.Outcome, len(turns))
	for i, turn := range turns {
		outcomes[i] = turn.Outcome
	}
	assert.Equal(t, []core.Outcome{
		core.OutcomeExact,
		core.OutcomeRepeatQuestion,
		core.OutcomeExact,
		core.OutcomeRepeatAnswer,
		core.OutcomeEmpty,
		core.OutcomeFuzzy,
		core.OutcomeFuzzy,
	}, outcomes)
}

func TestPipeline_MemoryState(t *testing.T) {
	store, err := conversation.NewMemoryStore(16)
	require.NoError(t, err)
	runConversation(t, newPipeline(t, store))
}

func TestPipeline_RedisState(t *testing.T) {
	addr := test.RedisAddr(t)
	ctx := context.Background()

	client, err := redis.NewClient(ctx, &config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	prefix := "footix-it:" + t.Name() + ":"
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})

	runConversation(t, newPipeline(t, redis.NewConversationStore(client, prefix, time.Minute)))
}
