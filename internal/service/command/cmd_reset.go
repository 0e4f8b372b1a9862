package command

import (
	"context"
	"fmt"
)

type ConversationResetter interface {
	Reset(ctx context.Context, id string) error
}

// ResetCommand forgets the previous question and answer of the channel, so
// the next message is never treated as a repeat.
type ResetCommand struct {
	conversations ConversationResetter
	formatter     *ResponseFormatter
}

func NewResetCommand(conversations ConversationResetter) *ResetCommand {
	return &ResetCommand{
		conversations: conversations,
		formatter:     NewResponseFormatter(),
	}
}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Description() string {
	return "Start the conversation over"
}

func (c *ResetCommand) Execute(ctx context.Context, channelID string, args []string) (string, error) {
	if err := c.conversations.Reset(ctx, channelID); err != nil {
		return "", fmt.Errorf("failed to reset conversation: %w", err)
	}
	return c.formatter.Success("Conversation reset"), nil
}
