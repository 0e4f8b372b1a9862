package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/footix/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	// AllowedChats restricts the bot to these chat ids. Empty allows every chat.
	AllowedChats []int64 `env:"TELEGRAM_ALLOWED_CHATS" envSeparator:","`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}
