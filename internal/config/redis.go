package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/footix/pkg/log"
)

type RedisConfig struct {
	Addr      string        `env:"REDIS_ADDRESS,notEmpty" envDefault:"localhost:6379"`
	Password  string        `env:"REDIS_PASSWORD"`
	DB        int           `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix string        `env:"FOOTIX_REDIS_PREFIX" envDefault:"footix:"`
	TTL       time.Duration `env:"FOOTIX_CONVERSATION_TTL" envDefault:"24h"`
}

func NewRedisConfig(ctx context.Context) *RedisConfig {
	c := &RedisConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Redis config")
	}
	return c
}
