package bot

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/pkg/log"
	"github.com/sandevgo/footix/pkg/retry"
)

// Listener answers inbound messages. Slash commands go to the router,
// everything else to the responder. Answered turns are written to the
// transcript when one is configured.
type Listener struct {
	responder core.Responder
	router    core.CmdRouter
	turns     core.TurnRepository
	retrier   *retry.Retrier
	now       func() time.Time
}

// NewListener builds a Listener. router and turns may be nil.
func NewListener(
	responder core.Responder,
	router core.CmdRouter,
	turns core.TurnRepository,
	retrier *retry.Retrier,
) *Listener {
	if retrier == nil {
		retrier = retry.NewDefaultRetrier()
	}
	return &Listener{
		responder: responder,
		router:    router,
		turns:     turns,
		retrier:   retrier,
		now:       time.Now,
	}
}

func (l *Listener) OnMessage(ctx context.Context, u core.Utterance, out core.Sender) {
	reply := l.Handle(ctx, u)

	err := l.retrier.Do(ctx, func() error {
		return out.Send(ctx, u.ChannelID, reply.Text)
	})
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).
			Str("channel", u.ChannelID).
			Str("outcome", string(reply.Outcome)).
			Msg("failed to deliver reply")
	}
}

// Handle produces the reply for u without delivering it.
func (l *Listener) Handle(ctx context.Context, u core.Utterance) core.Reply {
	if l.router != nil {
		if text, ok := l.router.Execute(ctx, u.ChannelID, u.Text); ok {
			return core.Reply{Text: text, ChannelID: u.ChannelID, Outcome: core.OutcomeCommand}
		}
	}

	reply := l.responder.HandleInbound(ctx, u)
	l.record(ctx, u, reply)
	return reply
}

func (l *Listener) record(ctx context.Context, u core.Utterance, reply core.Reply) {
	if l.turns == nil {
		return
	}

	turn := core.Turn{
		ID:        uuid.NewString(),
		ChannelID: u.ChannelID,
		SenderID:  u.SenderID,
		Input:     u.Text,
		Canonical: reply.Canonical,
		Response:  reply.Text,
		Outcome:   reply.Outcome,
		Score:     reply.Score,
		CreatedAt: l.now().UTC(),
	}
	if err := l.turns.AddTurn(ctx, turn); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("channel", u.ChannelID).Msg("failed to record turn")
	}
}
