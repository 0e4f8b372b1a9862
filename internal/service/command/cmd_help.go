package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/footix/internal/core"
)

type commandLister interface {
	ListCommands() []core.Command
}

type HelpCommand struct {
	commands  commandLister
	formatter *ResponseFormatter
}

func NewHelpCommand(commands commandLister) *HelpCommand {
	return &HelpCommand{
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, channelID string, args []string) (string, error) {
	list := c.commands.ListCommands()
	items := make([]string, 0, len(list))
	for _, cmd := range list {
		items = append(items, fmt.Sprintf("`/%s` %s", cmd.Name(), cmd.Description()))
	}

	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(items),
	), nil
}
