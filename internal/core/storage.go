package core

import "context"

type KnowledgeSource interface {
	LoadEntries(ctx context.Context) ([]Entry, error)
}

type KnowledgeRepository interface {
	KnowledgeSource
	SaveEntries(ctx context.Context, entries []Entry) error
}

type TurnRepository interface {
	AddTurn(ctx context.Context, turn Turn) error
	RecentTurns(ctx context.Context, channelID string, limit int) ([]Turn, error)
}
