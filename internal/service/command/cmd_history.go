package command

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sandevgo/footix/internal/core"
)

const (
	defaultHistoryLimit = 5
	maxHistoryLimit     = 50
)

type HistoryCommand struct {
	turns     core.TurnRepository
	formatter *ResponseFormatter
}

func NewHistoryCommand(turns core.TurnRepository) *HistoryCommand {
	return &HistoryCommand{
		turns:     turns,
		formatter: NewResponseFormatter(),
	}
}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "Show the last turns of this chat"
}

func (c *HistoryCommand) Execute(ctx context.Context, channelID string, args []string) (string, error) {
	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return c.formatter.Usage("/history [count]"), nil
		}
		limit = min(n, maxHistoryLimit)
	}

	turns, err := c.turns.RecentTurns(ctx, channelID, limit)
	if err != nil {
		return "", fmt.Errorf("failed to load history: %w", err)
	}
	if len(turns) == 0 {
		return c.formatter.Info("History is empty"), nil
	}

	items := make([]string, 0, len(turns))
	for _, t := range turns {
		items = append(items, fmt.Sprintf("%s `%s` %s → %s",
			t.CreatedAt.Local().Format(time.TimeOnly), t.Outcome, t.Input, t.Response))
	}

	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("Last %d turns", len(turns))),
		c.formatter.List(items),
	), nil
}
