package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/internal/service/conversation"
	"github.com/sandevgo/footix/internal/service/knowledge"
	"github.com/sandevgo/footix/internal/service/resolver"
	"github.com/sandevgo/footix/internal/storage/redis"
	"github.com/sandevgo/footix/internal/storage/sqlite"
	"github.com/sandevgo/footix/pkg/log"
	"github.com/sandevgo/footix/pkg/srv"
)

// engine is everything needed to answer messages, shared by the commands
// that resolve utterances.
type engine struct {
	cfg       *config.AppConfig
	db        *sql.DB
	source    core.KnowledgeSource
	turns     *sqlite.TurnsRepo
	responder *resolver.Responder
	cleanups  []srv.Service
}

type engineOptions struct {
	// ephemeral keeps conversation state in memory and skips the
	// transcript, for one-shot commands.
	ephemeral bool
}

func newEngine(ctx context.Context, cfg *config.AppConfig, opts engineOptions) (*engine, error) {
	e := &engine{cfg: cfg}

	needsDB := cfg.NeedsDatabase()
	if opts.ephemeral {
		needsDB = cfg.KnowledgeSource == config.KnowledgeFromSQLite
	}
	if needsDB {
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		e.db = db
		e.cleanups = append(e.cleanups, srv.NewCleanup(db.Close))
	}

	if cfg.Transcript && !opts.ephemeral {
		e.turns = sqlite.NewTurnsRepo(e.db)
	}

	e.source = knowledgeSource(cfg, e.db)
	r, err := newResolver(ctx, cfg, e.source)
	if err != nil {
		e.close()
		return nil, err
	}

	store, err := conversationStore(ctx, cfg, opts, e)
	if err != nil {
		e.close()
		return nil, err
	}

	e.responder = resolver.NewResponder(r, conversation.NewRegistry(store))
	return e, nil
}

func knowledgeSource(cfg *config.AppConfig, db *sql.DB) core.KnowledgeSource {
	if cfg.KnowledgeSource == config.KnowledgeFromSQLite {
		return sqlite.NewKnowledgeRepo(db)
	}
	return knowledge.NewFileSource(cfg.KnowledgePath)
}

func newResolver(ctx context.Context, cfg *config.AppConfig, source core.KnowledgeSource) (*resolver.Resolver, error) {
	entries, err := source.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}

	r, err := resolver.New(resolver.Config{
		Blacklist: cfg.Blacklist,
		Knowledge: entries,
		Canned:    cfg.CannedResponses(),
		Fuzziness: cfg.Fuzziness,
	})
	if err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Info().
		Int("entries", r.Base().Len()).
		Float64("fuzziness", cfg.Fuzziness).
		Str("source", cfg.KnowledgeSource).
		Msg("knowledge base loaded")
	return r, nil
}

func conversationStore(ctx context.Context, cfg *config.AppConfig, opts engineOptions, e *engine) (conversation.Store, error) {
	if cfg.StateBackend == config.StateInRedis && !opts.ephemeral {
		redisCfg := config.NewRedisConfig(ctx)
		client, err := redis.NewClient(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		e.cleanups = append(e.cleanups, srv.NewCleanup(client.Close))
		return redis.NewConversationStore(client, redisCfg.KeyPrefix, redisCfg.TTL), nil
	}
	store, err := conversation.NewMemoryStore(cfg.MaxConversations)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// turnRepository hides a nil *TurnsRepo behind a nil interface.
func (e *engine) turnRepository() core.TurnRepository {
	if e.turns == nil {
		return nil
	}
	return e.turns
}

func (e *engine) close() {
	for _, c := range e.cleanups {
		_ = c.Shutdown(context.Background())
	}
}
