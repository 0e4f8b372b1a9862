package telegram

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot      *tele.Bot
	cfg      *config.TelegramConfig
	listener core.MessageListener
	sender   *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	listener core.MessageListener,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		cfg:      cfg,
		listener: listener,
		sender:   newSender(b),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if !bot.allowed(c.Chat().ID) {
				return nil
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) allowed(chatID int64) bool {
	return len(b.cfg.AllowedChats) == 0 || slices.Contains(b.cfg.AllowedChats, chatID)
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("username", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	_ = c.Notify(tele.Typing)

	b.listener.OnMessage(ctx, utterance(c.Chat().ID, c.Sender(), c.Text()), b.sender)
	return nil
}

func utterance(chatID int64, from *tele.User, text string) core.Utterance {
	u := core.Utterance{
		Text:      text,
		ChannelID: strconv.FormatInt(chatID, 10),
	}
	if from != nil {
		u.SenderID = strconv.FormatInt(from.ID, 10)
	}
	return u
}
