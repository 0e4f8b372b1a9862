package command

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sandevgo/footix/internal/core"
)

type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands: make(map[string]core.Command),
	}
	c.Register(commands...)
	return c
}

func (c *Router) Register(commands ...core.Command) {
	for _, cmd := range commands {
		c.commands[cmd.Name()] = cmd
	}
}

// Execute runs input as a slash command. The second return value is false
// when input is not a command and should be answered by the responder.
func (c *Router) Execute(ctx context.Context, channelID, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	// telegram appends the bot name in groups: /help@footix_bot
	name, _, _ = strings.Cut(name, "@")
	args := parts[1:]

	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Sprintf("Unknown command: /%s. Try /help", name), true
	}

	result, err := cmd.Execute(ctx, channelID, args)
	if err != nil {
		return NewResponseFormatter().Error(name, err), true
	}
	return result, true
}

// ListCommands returns the registered commands ordered by name.
func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	slices.SortFunc(res, func(a, b core.Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return res
}
