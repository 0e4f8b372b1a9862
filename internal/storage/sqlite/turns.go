package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/pkg/log"
)

// TurnsRepo is the transcript of answered turns.
type TurnsRepo struct {
	db *sql.DB
}

func NewTurnsRepo(db *sql.DB) *TurnsRepo {
	return &TurnsRepo{db: db}
}

func (r *TurnsRepo) AddTurn(ctx context.Context, t core.Turn) error {
	// seq orders turns of a channel even when created_at collides
	query := `
		INSERT INTO turns (id, seq, channel_id, sender_id, input, canonical, response, outcome, score, created_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM turns WHERE channel_id = ?), ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.ChannelID, t.ChannelID, t.SenderID, t.Input, t.Canonical, t.Response, string(t.Outcome), t.Score, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert turn: %w", err)
	}
	return nil
}

// RecentTurns returns the last limit turns of a channel, oldest first.
func (r *TurnsRepo) RecentTurns(ctx context.Context, channelID string, limit int) ([]core.Turn, error) {
	query := `
		SELECT id, channel_id, sender_id, input, canonical, response, outcome, score, created_at
		FROM turns WHERE channel_id = ? ORDER BY seq DESC LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	var turns []core.Turn
	for rows.Next() {
		var (
			t       core.Turn
			outcome string
		)
		if err := rows.Scan(&t.ID, &t.ChannelID, &t.SenderID, &t.Input, &t.Canonical, &t.Response, &outcome, &t.Score, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		t.Outcome = core.Outcome(outcome)
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.Reverse(turns)

	log.FromCtx(ctx).Debug().Str("channel", channelID).Int("count", len(turns)).Msg("loaded turns")
	return turns, nil
}

// Channels lists the channels with at least one turn, most recently active
// first.
func (r *TurnsRepo) Channels(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT channel_id FROM turns GROUP BY channel_id ORDER BY MAX(created_at) DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query channels: %w", err)
	}
	defer rows.Close()

	var channels []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, c)
	}
	return channels, rows.Err()
}
