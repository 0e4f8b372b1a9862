package resolver

import (
	"context"
	"time"

	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/internal/service/conversation"
	"github.com/sandevgo/footix/pkg/log"
)

// Responder resolves utterances per channel. Every channel has its own
// conversation state; turns of one channel are handled one at a time.
type Responder struct {
	resolver *Resolver
	registry *conversation.Registry
}

func NewResponder(resolver *Resolver, registry *conversation.Registry) *Responder {
	return &Responder{
		resolver: resolver,
		registry: registry,
	}
}

func (r *Responder) Resolver() *Resolver {
	return r.resolver
}

func (r *Responder) Registry() *conversation.Registry {
	return r.registry
}

// HandleInbound never fails. When the conversation state cannot be loaded or
// saved the turn is still answered, as if the conversation had just started.
func (r *Responder) HandleInbound(ctx context.Context, u core.Utterance) core.Reply {
	logger := log.FromCtx(ctx)
	start := time.Now()

	var res Result
	err := r.registry.Do(ctx, u.ChannelID, func(st *conversation.State) {
		res = r.resolver.Resolve(st, u.Text)
	})
	if err != nil {
		stateErrorsTotal.Inc()
		logger.Warn().Err(err).Str("channel", u.ChannelID).Msg("conversation state unavailable")
	}

	resolveDuration.Observe(time.Since(start).Seconds())
	observe(res)

	logger.Debug().
		Str("channel", u.ChannelID).
		Str("canonical", res.Canonical).
		Str("outcome", string(res.Outcome)).
		Float64("score", res.Score).
		Str("question", res.Question).
		Msg("resolved utterance")

	return core.Reply{
		Text:      res.Text,
		ChannelID: u.ChannelID,
		Outcome:   res.Outcome,
		Score:     res.Score,
		Canonical: res.Canonical,
	}
}
