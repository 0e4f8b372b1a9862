package main

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/service/installer"
	"github.com/sandevgo/footix/internal/service/ui"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Interactive setup wizard",
	Long:  `Writes a .env file and a starter knowledge base to the runtime directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runtimePath := config.GetRuntimePath()

		state, err := installer.RunWizard(runtimePath)
		if err != nil {
			return err
		}

		envPath := filepath.Join(runtimePath, ".env")
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("failed to load written configuration: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.GoodStyle.Render("✓ Footix is configured in "+runtimePath))
		if state.Seeded {
			fmt.Fprintln(cmd.OutOrStdout(), "  A starter knowledge base was written. Edit it and run 'footix check'.")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "  Run 'footix start' to begin.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
