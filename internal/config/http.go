package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/footix/pkg/log"
)

type HTTPConfig struct {
	Addr            string        `env:"FOOTIX_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"FOOTIX_HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"FOOTIX_HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"FOOTIX_HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// AuthToken, when set, must be sent as a bearer token to /v1 routes.
	AuthToken string `env:"FOOTIX_HTTP_TOKEN"`
}

func NewHTTPConfig(ctx context.Context) *HTTPConfig {
	c := &HTTPConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse HTTP config")
	}
	return c
}
