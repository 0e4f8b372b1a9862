package main

import (
	"database/sql"
	"fmt"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/service/ui"
	"github.com/sandevgo/footix/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [channel]",
	Short: "Show the transcript of a channel",
	Long:  `Without a channel, lists the channels that have a transcript.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		return withDatabase(ctx, cfg, func(db *sql.DB) error {
			repo := sqlite.NewTurnsRepo(db)

			if len(args) == 0 {
				channels, err := repo.Channels(ctx)
				if err != nil {
					return err
				}
				for _, ch := range channels {
					fmt.Fprintln(out, ch)
				}
				return nil
			}

			turns, err := repo.RecentTurns(ctx, args[0], historyLimit)
			if err != nil {
				return err
			}
			for _, t := range turns {
				fmt.Fprintf(out, "%s %s\n", ui.DescStyle.Render(t.CreatedAt.Local().Format("2006-01-02 15:04:05")), t.SenderID)
				fmt.Fprintf(out, "  > %s\n", t.Input)
				fmt.Fprintf(out, "  < %s %s\n", t.Response, ui.ScoreStyle(t.Score).Render("["+string(t.Outcome)+"]"))
			}
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of turns to show")
	rootCmd.AddCommand(historyCmd)
}
