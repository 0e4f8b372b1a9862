package core

import "context"

// Sender delivers an outbound message on a channel.
type Sender interface {
	Send(ctx context.Context, channelID, text string) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, channelID, text string) error

func (f SenderFunc) Send(ctx context.Context, channelID, text string) error {
	return f(ctx, channelID, text)
}

// MessageListener receives inbound messages from a gateway and answers
// through the given Sender.
type MessageListener interface {
	OnMessage(ctx context.Context, u Utterance, out Sender)
}

// Responder resolves one utterance into a reply. It never fails.
type Responder interface {
	HandleInbound(ctx context.Context, u Utterance) Reply
}
