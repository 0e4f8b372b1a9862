package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/service/knowledge"
	"github.com/sandevgo/footix/internal/service/normalize"
	"github.com/sandevgo/footix/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Manage the SQLite knowledge base",
}

var kbImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a YAML or JSON knowledge file into the database",
	Long: `Validates the file and upserts its entries into the database. Questions that
already exist (ignoring case) get the new answer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}

		entries, err := knowledge.NewFileSource(args[0]).LoadEntries(ctx)
		if err != nil {
			return err
		}
		base, err := knowledge.New(entries, normalize.New(cfg.Blacklist).Normalize)
		if err != nil {
			return err
		}

		return withDatabase(ctx, cfg, func(db *sql.DB) error {
			n, err := sqlite.NewKnowledgeRepo(db).Merge(ctx, base.Entries())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries into %s\n", n, cfg.GetDatabasePath())
			return nil
		})
	},
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions stored in the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}

		return withDatabase(ctx, cfg, func(db *sql.DB) error {
			entries, err := sqlite.NewKnowledgeRepo(db).LoadEntries(ctx)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n    %s\n", e.Question, e.Answer)
			}
			return nil
		})
	},
}

func withDatabase(ctx context.Context, cfg *config.AppConfig, fn func(db *sql.DB) error) error {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func init() {
	kbCmd.AddCommand(kbImportCmd, kbListCmd)
	rootCmd.AddCommand(kbCmd)
}
