package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/footix/pkg/log"
	"github.com/sandevgo/footix/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Footix services",
	Long:  `Loads the knowledge base and starts every enabled gateway (terminal, Telegram, HTTP).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting footix")

		services := NewServices(ctx)

		srv.StartServices(ctx, services, stop)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("footix has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
