package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/pkg/log"
)

// KnowledgeRepo keeps knowledge entries in the knowledge table. Questions are
// unique ignoring ASCII case.
type KnowledgeRepo struct {
	db *sql.DB
}

func NewKnowledgeRepo(db *sql.DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

func (r *KnowledgeRepo) LoadEntries(ctx context.Context) ([]core.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT question, answer FROM knowledge ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge: %w", err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		var e core.Entry
		if err := rows.Scan(&e.Question, &e.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("entries", len(entries)).Msg("loaded knowledge from database")
	return entries, nil
}

// SaveEntries replaces the stored knowledge with entries.
func (r *KnowledgeRepo) SaveEntries(ctx context.Context, entries []core.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM knowledge`); err != nil {
		return fmt.Errorf("failed to clear knowledge: %w", err)
	}
	if err := insertEntries(ctx, tx, entries, false); err != nil {
		return err
	}
	return tx.Commit()
}

// Merge inserts entries, replacing the answer of questions already stored.
// It returns the number of entries written.
func (r *KnowledgeRepo) Merge(ctx context.Context, entries []core.Entry) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if err := insertEntries(ctx, tx, entries, true); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func insertEntries(ctx context.Context, tx *sql.Tx, entries []core.Entry, upsert bool) error {
	query := `INSERT INTO knowledge (question, answer) VALUES (?, ?)`
	if upsert {
		query += ` ON CONFLICT (question COLLATE NOCASE) DO UPDATE SET answer = excluded.answer, updated_at = CURRENT_TIMESTAMP`
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare knowledge insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Question, e.Answer); err != nil {
			return fmt.Errorf("failed to insert question %q: %w", e.Question, err)
		}
	}
	return nil
}
