package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/service/conversation"
	"github.com/sandevgo/footix/internal/service/resolver"
	"github.com/sandevgo/footix/internal/service/ui"
	"github.com/spf13/cobra"
)

var (
	askExplain bool
	askTop     int
)

var askCmd = &cobra.Command{
	Use:   "ask <text>",
	Short: "Answer a single message and exit",
	Long: `Resolves one message against the knowledge base in a fresh conversation.
With --explain the canonical form and the best scoring questions are printed too.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctx, flushLog := setupLogger(ctx)
		defer flushLog()

		cfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}

		eng, err := newEngine(ctx, cfg, engineOptions{ephemeral: true})
		if err != nil {
			return err
		}
		defer eng.close()

		raw := strings.Join(args, " ")
		r := eng.responder.Resolver()

		var st conversation.State
		res := r.Resolve(&st, raw)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, res.Text)
		if !askExplain {
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s %q\n", ui.DescStyle.Render("canonical:"), res.Canonical)
		fmt.Fprintf(out, "%s %s\n", ui.DescStyle.Render("outcome:  "), res.Outcome)
		if res.Question != "" {
			fmt.Fprintf(out, "%s %q %s\n", ui.DescStyle.Render("question: "), res.Question,
				ui.ScoreStyle(res.Score).Render(fmt.Sprintf("%.3f", res.Score)))
		}

		_, candidates := r.Candidates(raw)
		printCandidates(out, candidates, askTop)
		return nil
	},
}

func printCandidates(out io.Writer, candidates []resolver.Candidate, top int) {
	// stable, so equal scores keep scan order
	slices.SortStableFunc(candidates, func(a, b resolver.Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	if top > 0 && len(candidates) > top {
		candidates = candidates[:top]
	}
	if len(candidates) == 0 {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.TitleStyle.Render("CANDIDATES"))
	for _, c := range candidates {
		mark := " "
		if c.Exact {
			mark = "="
		}
		fmt.Fprintf(out, "  %s %s  %s\n", mark, ui.ScoreStyle(c.Score).Render(fmt.Sprintf("%.3f", c.Score)), c.Question)
	}
}

func init() {
	askCmd.Flags().BoolVarP(&askExplain, "explain", "e", false, "print the canonical input and candidate scores")
	askCmd.Flags().IntVarP(&askTop, "top", "n", 5, "number of candidates to print with --explain (0 for all)")
	rootCmd.AddCommand(askCmd)
}
