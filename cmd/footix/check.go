package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/service/knowledge"
	"github.com/sandevgo/footix/internal/service/resolver"
	"github.com/sandevgo/footix/internal/service/ui"
	"github.com/sandevgo/footix/pkg/log"
	"github.com/spf13/cobra"
)

var (
	checkWatch    bool
	checkDistance int
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a knowledge file",
	Long: `Loads a knowledge file (the configured one by default) with the configured
blacklist and canned responses, reports configuration errors and lists questions
that are suspiciously close to each other.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctx, flushLog := setupLogger(ctx)
		defer flushLog()

		cfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}

		path := cfg.KnowledgePath
		if len(args) == 1 {
			path = args[0]
		}
		source := knowledge.NewFileSource(path)
		out := cmd.OutOrStdout()

		if !checkWatch {
			return checkKnowledge(ctx, out, cfg, source)
		}

		changes, err := knowledge.Watch(ctx, path)
		if err != nil {
			return err
		}
		log.FromCtx(ctx).Info().Str("path", path).Msg("watching knowledge file, press Ctrl+C to stop")

		for {
			if err := checkKnowledge(ctx, out, cfg, source); err != nil {
				fmt.Fprintln(out, ui.BadStyle.Render("✗ "+err.Error()))
			}
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-changes:
				if !ok {
					return nil
				}
			}
		}
	},
}

func checkKnowledge(ctx context.Context, out io.Writer, cfg *config.AppConfig, source *knowledge.FileSource) error {
	entries, err := source.LoadEntries(ctx)
	if err != nil {
		return err
	}

	r, err := resolver.New(resolver.Config{
		Blacklist: cfg.Blacklist,
		Knowledge: entries,
		Canned:    cfg.CannedResponses(),
		Fuzziness: cfg.Fuzziness,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.GoodStyle.Render(fmt.Sprintf("✓ %s: %d entries", source.Path(), r.Base().Len())))

	for _, p := range r.Base().NearDuplicates(checkDistance) {
		fmt.Fprintf(out, "  %s %q ~ %q (distance %d)\n", ui.WarnStyle.Render("!"), p.First, p.Second, p.Distance)
	}
	return nil
}

func init() {
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-check every time the file changes")
	checkCmd.Flags().IntVar(&checkDistance, "distance", 2, "report questions within this edit distance")
	rootCmd.AddCommand(checkCmd)
}
