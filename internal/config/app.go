package config

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/pkg/log"
)

const (
	KnowledgeFromFile   = "file"
	KnowledgeFromSQLite = "sqlite"

	StateInMemory = "memory"
	StateInRedis  = "redis"
)

type AppConfig struct {
	RuntimePath string `env:"FOOTIX_RUNTIME_PATH"`

	// Knowledge
	KnowledgeSource string   `env:"FOOTIX_KNOWLEDGE_SOURCE" envDefault:"file"`
	KnowledgePath   string   `env:"FOOTIX_KNOWLEDGE_PATH"`
	Fuzziness       float64  `env:"FOOTIX_FUZZINESS" envDefault:"0.5"`
	Blacklist       []string `env:"FOOTIX_BLACKLIST" envDefault:"hey" envSeparator:","`

	// Canned responses
	ReplyUnknown        string `env:"FOOTIX_REPLY_UNKNOWN" envDefault:"I'M NOT SURE IF I UNDERSTAND WHAT YOU ARE TALKING ABOUT."`
	ReplyEmptyInput     string `env:"FOOTIX_REPLY_EMPTY_INPUT" envDefault:"SORRY, I WAS FALLING ASLEEP! WAHT'S UP?"`
	ReplyRepeatQuestion string `env:"FOOTIX_REPLY_REPEAT_QUESTION" envDefault:"ARE YOU REALLY MAKING ME REPEAT MYSELF??"`
	ReplyRepeatAnswer   string `env:"FOOTIX_REPLY_REPEAT_ANSWER" envDefault:"ARE YOU MOCKING ME?"`

	// Conversation state
	StateBackend     string `env:"FOOTIX_STATE_BACKEND" envDefault:"memory"`
	MaxConversations int    `env:"FOOTIX_MAX_CONVERSATIONS" envDefault:"10000"`
	Transcript       bool   `env:"FOOTIX_TRANSCRIPT" envDefault:"true"`

	// Transport Flags
	EnableCLI      bool `env:"FOOTIX_ENABLE_CLI" envDefault:"true"`
	EnableTelegram bool `env:"FOOTIX_ENABLE_TELEGRAM" envDefault:"false"`
	EnableHTTP     bool `env:"FOOTIX_ENABLE_HTTP" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := LoadAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

// LoadAppConfig parses the environment and fills in the paths that default
// to the runtime directory.
func LoadAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}

	c.RuntimePath = ResolveRuntimePath(c.RuntimePath)
	if c.KnowledgePath == "" {
		c.KnowledgePath = filepath.Join(c.RuntimePath, "knowledge.yaml")
	}

	if !slices.Contains([]string{KnowledgeFromFile, KnowledgeFromSQLite}, c.KnowledgeSource) {
		return nil, fmt.Errorf("unknown knowledge source %q", c.KnowledgeSource)
	}
	if !slices.Contains([]string{StateInMemory, StateInRedis}, c.StateBackend) {
		return nil, fmt.Errorf("unknown state backend %q", c.StateBackend)
	}
	return c, nil
}

func (c AppConfig) CannedResponses() core.CannedResponses {
	return core.CannedResponses{
		Unknown:        c.ReplyUnknown,
		EmptyInput:     c.ReplyEmptyInput,
		RepeatQuestion: c.ReplyRepeatQuestion,
		RepeatAnswer:   c.ReplyRepeatAnswer,
	}
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "footix.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

// NeedsDatabase reports whether any configured component stores data in
// SQLite.
func (c AppConfig) NeedsDatabase() bool {
	return c.Transcript || c.KnowledgeSource == KnowledgeFromSQLite
}
