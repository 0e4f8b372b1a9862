package main

import (
	"context"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/internal/service/bot"
	"github.com/sandevgo/footix/internal/service/command"
	"github.com/sandevgo/footix/internal/transport/api"
	"github.com/sandevgo/footix/internal/transport/cli"
	"github.com/sandevgo/footix/internal/transport/telegram"
	"github.com/sandevgo/footix/pkg/log"
	"github.com/sandevgo/footix/pkg/retry"
	"github.com/sandevgo/footix/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage, knowledge and conversation state
	eng, err := newEngine(ctx, appCfg, engineOptions{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize responder")
	}
	services := append([]srv.Service{}, eng.cleanups...)

	// 3. Chat commands
	turns := eng.turnRepository()
	router := command.NewRouter(
		eng.responder.Registry(),
		eng.responder.Resolver().Base(),
		turns,
	)

	// 4. Listener
	listener := bot.NewListener(eng.responder, router, turns, retry.NewDefaultRetrier())
	hub := bot.NewHub()
	unsubscribe := hub.Subscribe(listener)
	services = append(services, srv.NewCleanup(func() error {
		unsubscribe()
		return nil
	}))

	// 5. Transports
	transports, err := initTransports(ctx, appCfg, hub, listener)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	if len(transports) == 0 {
		logger.Fatal().Msg("no transport enabled, set FOOTIX_ENABLE_CLI, FOOTIX_ENABLE_TELEGRAM or FOOTIX_ENABLE_HTTP")
	}
	services = append(services, transports...)

	return services
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	hub core.MessageListener,
	handler api.Handler,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		b, err := telegram.NewBot(ctx, tgCfg, hub)
		if err != nil {
			return nil, err
		}
		services = append(services, b)
	}

	if cfg.EnableHTTP {
		services = append(services, api.NewServer(ctx, config.NewHTTPConfig(ctx), handler))
	}

	if cfg.EnableCLI {
		rl, err := cli.NewReadLine(hub, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
}
