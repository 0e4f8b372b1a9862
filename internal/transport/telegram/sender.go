package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandevgo/footix/pkg/conv"
	"github.com/sandevgo/footix/pkg/log"
	"github.com/sandevgo/footix/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

// sender delivers replies to a chat, converting Markdown to Telegram HTML
// and splitting long messages.
type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

func (s *sender) Send(ctx context.Context, channelID, text string) error {
	chatID, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return retry.Permanent(fmt.Errorf("invalid telegram chat id %q: %w", channelID, err))
	}
	return s.sendMarkdown(ctx, tele.ChatID(chatID), text)
}

func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range conv.SplitMessage(html, maxTelegramMsgLen) {
		if _, err := s.bot.Send(to, chunk, tele.ModeHTML); err != nil {
			logger.Warn().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return classify(err)
		}
	}
	return nil
}

// classify marks errors that another attempt cannot fix.
func classify(err error) error {
	var floodErr tele.FloodError
	if errors.As(err, &floodErr) {
		return err
	}

	var apiErr *tele.Error
	if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 {
		return retry.Permanent(err)
	}
	return err
}
